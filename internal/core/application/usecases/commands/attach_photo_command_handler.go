package commands

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"cleaning/internal/core/domain/model/job"
	"cleaning/internal/core/domain/model/kernel"
	"cleaning/internal/core/ports"
)

// AttachPhotoCommandHandler writes the photo to the media store and records its
// reference on the checklist item. Files are named
// job<jobID>_item<itemID>_<unix nanos><ext> so concurrent uploads never collide.
type AttachPhotoCommandHandler struct {
	uowFactory UoWFactory
	media      ports.MediaStore
	clock      kernel.Clock
}

func NewAttachPhotoCommandHandler(
	uowFactory UoWFactory,
	media ports.MediaStore,
	clock kernel.Clock,
) AttachPhotoCommandHandler {
	return AttachPhotoCommandHandler{
		uowFactory: uowFactory,
		media:      media,
		clock:      clock,
	}
}

func (h AttachPhotoCommandHandler) Handle(ctx context.Context, cmd AttachPhotoCommand) (*job.ChecklistItem, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	j, err := lockJob(ctx, uow, cmd.JobID())
	if err != nil {
		return nil, err
	}

	if err = authorizeJobWorker(ctx, uow, cmd.Principal(), j); err != nil {
		return nil, err
	}

	item, err := j.ChecklistItem(cmd.ItemID())
	if errors.Is(err, job.ErrChecklistItemNotFound) {
		return nil, ErrChecklistItemNotFound
	}
	if err != nil {
		return nil, err
	}

	name := PhotoFileName(j.ID(), item.ID(), h.clock.Now().UnixNano(), cmd.Ext())
	ref, err := h.media.Save(ctx, name, bytes.NewReader(cmd.Content()))
	if err != nil {
		return nil, err
	}

	if err = h.record(ctx, uow, j, item.ID(), ref); err != nil {
		// The file is only referenced once the job row commits.
		if delErr := h.media.Delete(context.WithoutCancel(ctx), ref); delErr != nil {
			return nil, errors.Join(err, delErr)
		}
		return nil, err
	}

	return item, nil
}

func (h AttachPhotoCommandHandler) record(ctx context.Context, uow UoW, j *job.Job, itemID kernel.UUID, ref string) error {
	if err := j.AttachPhoto(itemID, ref); err != nil {
		return err
	}

	if err := updateJob(ctx, uow, j, j.Status(), ErrConcurrentModification); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func PhotoFileName(jobID kernel.UUID, itemID kernel.UUID, nanos int64, ext string) string {
	return fmt.Sprintf("job%s_item%s_%d%s", jobID, itemID, nanos, ext)
}
