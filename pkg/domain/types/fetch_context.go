package types

// ImageFetchContext scopes a batch thumbnail fetch to the UI surface that
// needs the URLs, so the reducer can attribute the resulting batch and the
// scheduler can re-check only its own context.
type ImageFetchContext string

const (
	FetchContextArticleBanners ImageFetchContext = "article-banner-images"
	FetchContextAlbumCovers    ImageFetchContext = "album-covers"
	FetchContextPhotosInAlbum  ImageFetchContext = "photos-in-album"
)

// IsValid checks if the fetch context is a known surface
func (c ImageFetchContext) IsValid() bool {
	switch c {
	case FetchContextArticleBanners, FetchContextAlbumCovers, FetchContextPhotosInAlbum:
		return true
	default:
		return false
	}
}

func (c ImageFetchContext) String() string {
	return string(c)
}
