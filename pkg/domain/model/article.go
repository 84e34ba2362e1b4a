package model

import (
	"time"

	"github.com/lakecity-club/clubstate/pkg/domain/types"
)

// Article is a published news article. Body images are referenced from the
// markdown body with {{{imageId}}} placeholders.
type Article struct {
	ID               types.ArticleID  `json:"id"`
	Title            string           `json:"title"`
	Body             string           `json:"body"`
	BannerImageID    types.ImageID    `json:"bannerImageId,omitempty"`
	BookmarkDate     *time.Time       `json:"bookmarkDate"`
	ModificationInfo ModificationInfo `json:"modificationInfo"`
}

// ArticleFormData is the editable subset of an article held by the article
// form while a draft is being written
type ArticleFormData struct {
	Title         string        `json:"title"`
	Body          string        `json:"body"`
	BannerImageID types.ImageID `json:"bannerImageId,omitempty"`
}
