package managedfile

import (
	"fmt"
	"mime/multipart"
	"strings"

	"portfolio_backend/internal/apperrors"
)

// Rule is the per-resource upload policy, enforced before the workflow
// touches any store.
type Rule struct {
	Folder       string   // bucket folder for this resource kind
	FormField    string   // multipart field name
	AllowedTypes []string // exact MIME types, or prefixes ending in "/"
	MaxSize      int64    // bytes
	Required     bool     // create fails without a file
}

// Upload policies per resource kind.
var (
	ProjectImageRule = Rule{
		Folder:       "projects",
		FormField:    "projectImage",
		AllowedTypes: []string{"image/"},
		MaxSize:      10 << 20,
	}

	ExperienceLogoRule = Rule{
		Folder:       "experiences",
		FormField:    "companyLogo",
		AllowedTypes: []string{"image/"},
		MaxSize:      10 << 20,
	}

	ResumeFileRule = Rule{
		Folder:       "resumes",
		FormField:    "resumeFile",
		AllowedTypes: []string{"application/pdf"},
		MaxSize:      5 << 20,
		Required:     true,
	}

	CertificateFileRule = Rule{
		Folder:    "certificates",
		FormField: "certificateImage",
		AllowedTypes: []string{
			"image/jpeg", "image/jpg", "image/png", "image/gif", "image/webp",
			"application/pdf",
		},
		MaxSize:  5 << 20,
		Required: true,
	}

	ProfilePhotoRule = Rule{
		Folder:       "profile",
		FormField:    "profilePhoto",
		AllowedTypes: []string{"image/"},
		MaxSize:      2 << 20,
	}
)

// Validate checks the file header against the rule.
func (r Rule) Validate(file *multipart.FileHeader) error {
	if file.Size > r.MaxSize {
		return apperrors.ErrFileTooLarge.WithDetails(
			fmt.Sprintf("maximum allowed size is %d MB", r.MaxSize>>20))
	}

	mimeType := file.Header.Get("Content-Type")
	if !r.typeAllowed(mimeType) {
		return apperrors.ErrInvalidFileType.WithDetails(
			fmt.Sprintf("allowed types: %s", strings.Join(r.AllowedTypes, ", ")))
	}

	return nil
}

func (r Rule) typeAllowed(mimeType string) bool {
	for _, allowed := range r.AllowedTypes {
		if strings.HasSuffix(allowed, "/") {
			if strings.HasPrefix(mimeType, allowed) {
				return true
			}
		} else if mimeType == allowed {
			return true
		}
	}
	return false
}
