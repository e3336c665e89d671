package commands

import (
	"errors"
	"path/filepath"
	"strings"

	"cleaning/internal/core/domain/model/identity"
	"cleaning/internal/core/domain/model/kernel"
	"cleaning/internal/pkg/errs"
	"cleaning/internal/pkg/guard"
)

// defaultPhotoExt is used when the uploaded filename carries no extension.
const defaultPhotoExt = ".bin"

var ErrAttachPhotoCommandIsNotConstructed = errors.New(
	"AttachPhotoCommand must be created via NewAttachPhotoCommand constructor",
)

// AttachPhotoCommand stores evidence for one checklist item. It does not check the item.
type AttachPhotoCommand struct {
	principal identity.Principal
	jobID     kernel.UUID
	itemID    kernel.UUID
	content   []byte
	ext       string

	guard guard.ConstructorGuard
}

func NewAttachPhotoCommand(
	principal identity.Principal,
	jobID kernel.UUID,
	itemID kernel.UUID,
	content []byte,
	filenameHint string,
) (AttachPhotoCommand, error) {
	var contentErr error
	if len(content) == 0 {
		contentErr = errs.NewValueIsRequiredError("photo")
	}

	if err := errors.Join(principal.Validate(), jobID.Validate(), itemID.Validate(), contentErr); err != nil {
		return AttachPhotoCommand{}, err
	}

	return AttachPhotoCommand{
		principal: principal,
		jobID:     jobID,
		itemID:    itemID,
		content:   content,
		ext:       photoExt(filenameHint),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c AttachPhotoCommand) Validate() error {
	return c.guard.Validate(ErrAttachPhotoCommandIsNotConstructed)
}

func (c AttachPhotoCommand) Principal() identity.Principal {
	return c.principal
}

func (c AttachPhotoCommand) JobID() kernel.UUID {
	return c.jobID
}

func (c AttachPhotoCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c AttachPhotoCommand) Content() []byte {
	return c.content
}

// Ext is the lower-cased extension of the uploaded filename, dot included.
func (c AttachPhotoCommand) Ext() string {
	return c.ext
}

func photoExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	if ext == "" || ext == "." || strings.ContainsAny(ext, `/\`) {
		return defaultPhotoExt
	}
	return ext
}
