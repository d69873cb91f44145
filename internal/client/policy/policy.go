// Package policy holds the static file-acceptance policy: which categories
// of file may be uploaded, under which extensions and MIME types, and up to
// which size. Lookup order over the table is the declared order, so the
// image category always wins ties over document.
package policy

import "slices"

// UploadLimit is the global size ceiling applied before any category check.
const UploadLimit int64 = 50 * 1024 * 1024

// Category describes one class of acceptable file.
type Category struct {
	// Key is the stable identifier ("image", "document").
	Key string

	// DisplayName is used in user-facing rejection messages.
	DisplayName string

	// Extensions holds the accepted lowercase extensions, dot included.
	Extensions []string

	// MimeTypes holds the accepted declared content types.
	MimeTypes []string

	// MaxSize is the per-category size ceiling in bytes.
	MaxSize int64
}

// Table is the acceptance policy in lookup order. Every extension appears in
// exactly one category.
var Table = []Category{
	{
		Key:         "image",
		DisplayName: "image",
		Extensions:  []string{".jpg", ".jpeg", ".png", ".gif", ".webp"},
		MimeTypes:   []string{"image/jpeg", "image/png", "image/gif", "image/webp"},
		MaxSize:     10 * 1024 * 1024,
	},
	{
		Key:         "document",
		DisplayName: "PDF document",
		Extensions:  []string{".pdf"},
		MimeTypes:   []string{"application/pdf"},
		MaxSize:     20 * 1024 * 1024,
	},
}

// CategoryByMIME resolves a category by declared content type; first match
// in table order wins.
func CategoryByMIME(mimeType string) (*Category, bool) {
	for i := range Table {
		if slices.Contains(Table[i].MimeTypes, mimeType) {
			return &Table[i], true
		}
	}
	return nil, false
}

// CategoryByExtension resolves a category by lowercase extension (dot
// included), independent of any MIME sniffing.
func CategoryByExtension(ext string) (*Category, bool) {
	for i := range Table {
		if slices.Contains(Table[i].Extensions, ext) {
			return &Table[i], true
		}
	}
	return nil, false
}
