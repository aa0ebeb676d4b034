package microcenter

import "fmt"

const (
	DefaultImageBaseURL = "https://productimages.microcenter.com"

	galleryImagesPerView = 10
)

// ImageSet builds gallery image URLs for a product
type ImageSet struct {
	BaseURL string
}

// URLs returns 10 front views numbered 01-10 followed by 10 package views,
// also numbered 01-10. The first URL is the primary image.
func (s ImageSet) URLs(productID, sku string) []string {
	base := s.BaseURL
	if base == "" {
		base = DefaultImageBaseURL
	}

	urls := make([]string, 0, 2*galleryImagesPerView)
	for _, view := range []string{"front", "package"} {
		for n := 1; n <= galleryImagesPerView; n++ {
			urls = append(urls, fmt.Sprintf("%s/%s_%s_%02d_%s_zoom.jpg", base, productID, sku, n, view))
		}
	}
	return urls
}

// BuildImageURLs returns the gallery for a product on the default image host
func BuildImageURLs(productID, sku string) []string {
	return ImageSet{}.URLs(productID, sku)
}
