package catalog

// Placeholders served when a title has no artwork.
const (
	PosterPlaceholder   = "https://via.placeholder.com/500x750?text=No+Image"
	BackdropPlaceholder = "https://via.placeholder.com/1280x720?text=No+Backdrop"
)

// Default size tokens.
const (
	PosterSize   = "w500"
	BackdropSize = "w1280"
)

// ImageURL builds a poster URL. An empty size means PosterSize.
func (c *Client) ImageURL(path, size string) string {
	if path == "" {
		return PosterPlaceholder
	}
	if size == "" {
		size = PosterSize
	}
	return c.settings.ImageBaseURL + "/" + size + path
}

// BackdropURL builds a backdrop URL. An empty size means BackdropSize.
func (c *Client) BackdropURL(path, size string) string {
	if path == "" {
		return BackdropPlaceholder
	}
	if size == "" {
		size = BackdropSize
	}
	return c.settings.ImageBaseURL + "/" + size + path
}
