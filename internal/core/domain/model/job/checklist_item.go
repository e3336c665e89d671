package job

import (
	"errors"
	"strings"
	"time"

	"cleaning/internal/core/domain/model/kernel"
	"cleaning/internal/pkg/errs"
	"cleaning/internal/pkg/guard"
)

var (
	ErrChecklistItemIsNotConstructed = errors.New("ChecklistItem must be created via NewChecklistItem constructor")
	ErrCheckedAtMismatch             = errs.NewValueIsInvalidError("checked at must be set iff the item is checked")
)

// ChecklistItem is one required task of a job, optionally evidenced by a photo.
type ChecklistItem struct {
	id        kernel.UUID
	text      string
	checked   bool
	checkedAt *time.Time
	photoRef  string
	guard     guard.ConstructorGuard
}

func NewChecklistItem(id kernel.UUID, text string) (*ChecklistItem, error) {
	return RestoreChecklistItem(id, text, false, nil, "")
}

func RestoreChecklistItem(
	id kernel.UUID,
	text string,
	checked bool,
	checkedAt *time.Time,
	photoRef string,
) (*ChecklistItem, error) {
	item := &ChecklistItem{
		photoRef: photoRef,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setText(text),
		item.setChecked(checked, checkedAt),
	); err != nil {
		return nil, err
	}

	return item, nil
}

func (i *ChecklistItem) Validate() error {
	if i == nil {
		return ErrChecklistItemIsNotConstructed
	}
	return i.guard.Validate(ErrChecklistItemIsNotConstructed)
}

func (i *ChecklistItem) ID() kernel.UUID {
	return i.id
}

func (i *ChecklistItem) Text() string {
	return i.text
}

func (i *ChecklistItem) IsChecked() bool {
	return i.checked
}

func (i *ChecklistItem) CheckedAt() *time.Time {
	if i.checkedAt == nil {
		return nil
	}
	at := *i.checkedAt
	return &at
}

func (i *ChecklistItem) PhotoRef() string {
	return i.photoRef
}

// Check marks the item done. Re-checking keeps the first timestamp.
func (i *ChecklistItem) Check(at time.Time) {
	if i.checked {
		return
	}
	at = at.UTC()
	i.checked = true
	i.checkedAt = &at
}

// AttachPhoto records the evidence reference without checking the item.
func (i *ChecklistItem) AttachPhoto(ref string) error {
	if strings.TrimSpace(ref) == "" {
		return errs.NewValueIsRequiredError("photo reference")
	}
	i.photoRef = ref
	return nil
}

func (i *ChecklistItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *ChecklistItem) setText(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return errs.NewValueIsRequiredError("checklist text")
	}
	i.text = text
	return nil
}

func (i *ChecklistItem) setChecked(checked bool, checkedAt *time.Time) error {
	if checked != (checkedAt != nil) {
		return ErrCheckedAtMismatch
	}

	i.checked = checked
	if checkedAt != nil {
		at := checkedAt.UTC()
		i.checkedAt = &at
	}
	return nil
}
