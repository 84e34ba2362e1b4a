// Package persist is the persistence meta-layer: versioned key encoding,
// storage migration across app versions, rehydration of persisted slices,
// write-through sync of changed slices, and the post-rehydration sanitizers.
package persist

import "strings"

// versionDelimiter joins a slice name and an app version into a storage key.
// Decoding splits on the FIRST occurrence, so a slice name containing "_v"
// would decode wrong. That ambiguity is inherited from the shipped key
// format and kept as-is; none of the hydrated slice names below contain it.
const versionDelimiter = "_v"

// Hydrated slice names. These are the storage key prefixes, so changing one
// orphans every record persisted under the old name.
const (
	AppSlice      = "appState"
	ArticlesSlice = "articlesState"
	AuthSlice     = "authState"
	EventsSlice   = "eventsState"
	ImagesSlice   = "imagesState"
	MembersSlice  = "membersState"
)

// HydratedSlices lists every slice name the meta-layer persists and migrates
var HydratedSlices = []string{
	AppSlice,
	ArticlesSlice,
	AuthSlice,
	EventsSlice,
	ImagesSlice,
	MembersSlice,
}

// EncodeKey builds the storage key for a slice snapshot under an app version
func EncodeKey(slice, version string) string {
	return slice + versionDelimiter + version
}

// DecodeKey splits a storage key into slice name and version. Keys without
// the delimiter are not ours and report ok=false.
func DecodeKey(key string) (slice, version string, ok bool) {
	idx := strings.Index(key, versionDelimiter)
	if idx < 0 {
		return "", "", false
	}
	return key[:idx], key[idx+len(versionDelimiter):], true
}

func isHydratedSlice(name string) bool {
	for _, s := range HydratedSlices {
		if s == name {
			return true
		}
	}
	return false
}
