package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/gophnotes/internal/client/resolve"
	"github.com/iudanet/gophnotes/internal/client/save"
	"github.com/iudanet/gophnotes/internal/models"
)

// RunNote обрабатывает подкоманды note
func (c *Cli) RunNote(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: note add|list|show|edit|rm")
	}

	switch args[0] {
	case "add":
		parentID := ""
		if len(args) > 1 {
			parentID = args[1]
		}
		return c.noteAdd(ctx, parentID)
	case "list":
		parentID := ""
		if len(args) > 1 {
			parentID = args[1]
		}
		return c.noteList(parentID)
	case "show":
		if len(args) < 2 {
			return fmt.Errorf("usage: note show <id>")
		}
		return c.noteShow(args[1])
	case "edit":
		if len(args) < 2 {
			return fmt.Errorf("usage: note edit <id>")
		}
		return c.noteEdit(ctx, args[1])
	case "rm":
		if len(args) < 2 {
			return fmt.Errorf("usage: note rm <id>")
		}
		return c.noteRemove(ctx, args[1])
	default:
		return fmt.Errorf("unknown note subcommand: %s", args[0])
	}
}

// noteAdd создает заметку локально и ставит операцию в очередь
func (c *Cli) noteAdd(ctx context.Context, parentID string) error {
	title, err := c.io.ReadInput("Title: ")
	if err != nil {
		return fmt.Errorf("failed to read title: %w", err)
	}
	if title == "" {
		return fmt.Errorf("title cannot be empty")
	}

	content, err := c.io.ReadInput("Content: ")
	if err != nil {
		return fmt.Errorf("failed to read content: %w", err)
	}

	now := time.Now()
	note := models.Note{
		CreatedAt: now,
		UpdatedAt: now,
		ID:        uuid.New().String(),
		ParentID:  parentID,
		Title:     title,
		Content:   content,
		Direction: models.DirectionLTR,
	}

	// Кэш обновляется сразу: заметка видна до подтверждения сервером
	c.tree.Put(&note)

	if err := c.enqueueNoteOp(ctx, models.OpCreateNote, note); err != nil {
		return err
	}
	c.persistTree(ctx)

	c.io.Printf("Note created: %s\n", note.ID)
	return nil
}

func (c *Cli) noteList(parentID string) error {
	children := c.tree.Children(parentID)
	if len(children) == 0 {
		c.io.Println("No notes")
		return nil
	}

	for _, note := range children {
		c.io.Printf("  %s  v%-3d %s\n", note.ID, note.Version, note.Title)
	}
	return nil
}

func (c *Cli) noteShow(id string) error {
	note, ok := c.tree.Get(id)
	if !ok {
		return fmt.Errorf("note %s not found in local cache", id)
	}

	c.io.Printf("Title:    %s\n", note.Title)
	c.io.Printf("Version:  %d\n", note.Version)
	c.io.Printf("Updated:  %s\n", note.UpdatedAt.Format("2006-01-02 15:04:05"))
	c.io.Println("")
	c.io.Println(note.Content)
	return nil
}

// noteEdit изменяет контент через планировщик сохранений:
// версионированная запись с разрешением конфликтов.
func (c *Cli) noteEdit(ctx context.Context, id string) error {
	note, ok := c.tree.Get(id)
	if !ok {
		return fmt.Errorf("note %s not found in local cache", id)
	}

	c.io.Printf("Current content:\n%s\n\n", note.Content)
	content, err := c.io.ReadInput("New content: ")
	if err != nil {
		return fmt.Errorf("failed to read content: %w", err)
	}

	c.scheduler.Edit(models.PendingEdit{
		ID:              id,
		Content:         content,
		Direction:       note.Direction,
		ExpectedVersion: note.Version,
	})
	c.scheduler.Trigger(ctx, save.IntentItemSwitch)

	switch c.scheduler.State() {
	case models.SaveStateSaved:
		c.persistTree(ctx)
		c.io.Println("Saved")
		return nil
	case models.SaveStateConflict:
		return c.resolveEditConflict(ctx, content)
	default:
		// Сервер недоступен: изменение уходит в очередь и доедет позже
		c.scheduler.Reset()
		update := models.ContentUpdate{
			ID:              id,
			Content:         content,
			Direction:       note.Direction,
			ExpectedVersion: note.Version,
		}
		data, err := json.Marshal(update)
		if err != nil {
			return fmt.Errorf("failed to marshal content update: %w", err)
		}
		if _, err := c.manager.Enqueue(ctx, models.SyncOperation{
			Type: models.OpUpdateContent,
			Data: data,
		}); err != nil {
			return fmt.Errorf("failed to queue content update: %w", err)
		}
		c.tree.ApplyContent(id, content, note.Direction, note.Version)
		c.persistTree(ctx)
		c.io.Println("Server unreachable, change queued for sync")
		return nil
	}
}

// resolveEditConflict предлагает пользователю разрешить конфликт версий
func (c *Cli) resolveEditConflict(ctx context.Context, clientContent string) error {
	conflict := c.scheduler.Conflict()
	if conflict == nil {
		return fmt.Errorf("conflict state without conflict payload")
	}

	c.io.Println("Version conflict: the note was changed on the server.")
	if conflict.ServerItem != nil {
		c.io.Printf("\n--- server version (v%d) ---\n%s\n", conflict.ServerVersion, conflict.ServerItem.Content)
	}
	c.io.Printf("\n--- your version ---\n%s\n\n", clientContent)

	answer, err := c.io.ReadInput("Keep [s]erver version, [c]lient version, or [m]erge? ")
	if err != nil {
		return fmt.Errorf("failed to read choice: %w", err)
	}

	switch answer {
	case "s", "server":
		if err := c.scheduler.AcceptServerVersion(); err != nil {
			return err
		}
		c.persistTree(ctx)
		c.io.Println("Server version kept")
		return nil
	case "c", "client":
		if err := c.scheduler.ForceClientVersion(ctx); err != nil {
			return err
		}
		if c.scheduler.State() != models.SaveStateSaved {
			return fmt.Errorf("failed to save client version, try 'gophnotes sync' later")
		}
		c.persistTree(ctx)
		c.io.Println("Your version saved")
		return nil
	case "m", "merge":
		clientItem := &models.Item{
			ID:        conflict.ItemID,
			Content:   clientContent,
			Version:   conflict.ClientVersion,
			UpdatedAt: time.Now(),
		}
		merged, err := c.resolver.Resolve(ctx, resolve.Conflict{
			Client: clientItem,
			Server: conflict.ServerItem,
		}, resolve.StrategyMerge)
		if err != nil {
			return fmt.Errorf("merge failed: %w", err)
		}

		// Слитый контент становится новой клиентской версией
		if err := c.scheduler.AcceptServerVersion(); err != nil {
			return err
		}
		c.scheduler.Edit(models.PendingEdit{
			ID:              merged.ID,
			Content:         merged.Content,
			Direction:       merged.Direction,
			ExpectedVersion: conflict.ServerVersion,
		})
		c.scheduler.Trigger(ctx, save.IntentForceSave)
		if c.scheduler.State() != models.SaveStateSaved {
			return fmt.Errorf("failed to save merged version, try 'gophnotes sync' later")
		}
		c.persistTree(ctx)
		c.io.Println("Merged version saved")
		return nil
	default:
		return fmt.Errorf("unresolved conflict, no changes applied")
	}
}

// noteRemove помечает заметку удаленной и ставит удаление в очередь
func (c *Cli) noteRemove(ctx context.Context, id string) error {
	if _, ok := c.tree.Get(id); !ok {
		return fmt.Errorf("note %s not found in local cache", id)
	}

	ok, err := c.io.Confirm(fmt.Sprintf("Delete note %s?", id))
	if err != nil {
		return err
	}
	if !ok {
		c.io.Println("Cancelled")
		return nil
	}

	data, err := json.Marshal(models.Deletion{ID: id})
	if err != nil {
		return fmt.Errorf("failed to marshal deletion: %w", err)
	}
	if _, err := c.manager.Enqueue(ctx, models.SyncOperation{
		Type: models.OpDeleteNote,
		Data: data,
	}); err != nil {
		return fmt.Errorf("failed to queue deletion: %w", err)
	}

	c.tree.Remove(id)
	c.persistTree(ctx)
	c.io.Println("Note deleted")
	return nil
}

func (c *Cli) enqueueNoteOp(ctx context.Context, opType models.OperationType, note models.Note) error {
	data, err := json.Marshal(note)
	if err != nil {
		return fmt.Errorf("failed to marshal note: %w", err)
	}
	if _, err := c.manager.Enqueue(ctx, models.SyncOperation{
		Type: opType,
		Data: data,
	}); err != nil {
		return fmt.Errorf("failed to queue operation: %w", err)
	}
	return nil
}
