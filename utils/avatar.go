package utils

import (
	"net/url"
	"strings"
)

const avatarBaseURL = "https://ui-avatars.com/api/"

// AvatarURL returns a generated initials avatar for the given display name.
func AvatarURL(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "Guest"
	}
	q := url.Values{}
	q.Set("name", name)
	q.Set("background", "random")
	q.Set("size", "128")
	return avatarBaseURL + "?" + q.Encode()
}
