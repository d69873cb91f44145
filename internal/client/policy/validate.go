package policy

import (
	"fmt"
	"slices"

	"github.com/osadchiy/chatfiles/internal/client/models"
	"github.com/osadchiy/chatfiles/internal/client/notify"
	"github.com/osadchiy/chatfiles/internal/filex"
)

// Outcome is the result of validating one candidate file.
type Outcome struct {
	OK     bool
	Reason string
}

// Validator gates candidate files against the policy table. Rejections are
// reported to the notifier before being returned.
type Validator struct {
	notifier notify.Notifier
}

func NewValidator(notifier notify.Notifier) *Validator {
	if notifier == nil {
		notifier = notify.Nop{}
	}
	return &Validator{notifier: notifier}
}

// Validate applies the acceptance checks in order: presence, global size
// ceiling, MIME-resolved category, category size ceiling, extension match.
// Stateless apart from the notification side effect.
func (v *Validator) Validate(file *models.CandidateFile) Outcome {
	if file == nil {
		return v.reject("no file selected")
	}

	if file.Size > UploadLimit {
		return v.reject(fmt.Sprintf("file size cannot exceed %s", filex.FormatSize(UploadLimit)))
	}

	category, ok := CategoryByMIME(file.MimeType)
	if !ok {
		return v.reject("unsupported file format")
	}

	if file.Size > category.MaxSize {
		return v.reject(fmt.Sprintf("%s files cannot exceed %s",
			category.DisplayName, filex.FormatSize(category.MaxSize)))
	}

	ext := filex.FileExtension(file.Name)
	if !slices.Contains(category.Extensions, ext) {
		return v.reject("invalid file extension")
	}

	return Outcome{OK: true}
}

func (v *Validator) reject(reason string) Outcome {
	v.notifier.Error(reason)
	return Outcome{OK: false, Reason: reason}
}
