package uploads

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Cloudinary re-hosts evidence attachments so report rows never point
// at chat CDN links that expire.
type Cloudinary struct {
	cld *cloudinary.Cloudinary
}

// New initializes the uploader from a cloudinary:// URL.
func New(cloudinaryURL string) (*Cloudinary, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("create cloudinary client: %w", err)
	}
	return &Cloudinary{cld: cld}, nil
}

// Rehost uploads the file at srcURL and returns its durable HTTPS URL.
// The name becomes the public ID so evidence can be found by case
// number later.
func (c *Cloudinary) Rehost(ctx context.Context, srcURL, name string) (string, error) {
	resp, err := c.cld.Upload.Upload(ctx, srcURL, uploader.UploadParams{
		PublicID: name,
		Folder:   "mdt-evidence",
	})
	if err != nil {
		return "", fmt.Errorf("upload attachment: %w", err)
	}
	if resp.Error.Message != "" {
		return "", fmt.Errorf("upload attachment: %s", resp.Error.Message)
	}
	return resp.SecureURL, nil
}
