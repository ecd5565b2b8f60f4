package bot

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"

	"kenangan-bot/internal/domain"
	"kenangan-bot/internal/repository"
	"kenangan-bot/internal/service"
)

const pollTimeoutSeconds = 30

// Bot wires the orchestrator to the Telegram long-polling transport.
type Bot struct {
	api  *tgbotapi.BotAPI
	orch *Orchestrator
}

func New(token string, services *service.Services, sessions repository.SessionStore) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("creating telegram bot: %w", err)
	}

	b := &Bot{api: api}
	b.orch = NewOrchestrator(sessions, services, &telegramDownloader{api: api})

	log.Info().Str("username", api.Self.UserName).Msg("telegram bot authorized")
	return b, nil
}

// Run polls for updates until the context is cancelled. Updates are handled
// sequentially: one conversation step at a time.
func (b *Bot) Run(ctx context.Context) error {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = pollTimeoutSeconds

	updates := b.api.GetUpdatesChan(cfg)
	log.Info().Msg("bot polling")

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || msg.From == nil {
		return
	}

	upd := Update{
		UserID:  msg.From.ID,
		ChatID:  msg.Chat.ID,
		Private: msg.Chat.IsPrivate(),
	}

	switch {
	case msg.IsCommand():
		upd.Command = msg.Command()
	case len(msg.Photo) > 0:
		// Telegram sends multiple sizes; the last one is the largest.
		photo := msg.Photo[len(msg.Photo)-1]
		upd.Media = &Media{Type: domain.MediaPhoto, FileID: photo.FileID}
	case msg.Video != nil:
		upd.Media = &Media{
			Type:     domain.MediaVideo,
			FileID:   msg.Video.FileID,
			FileName: msg.Video.FileName,
			MimeType: msg.Video.MimeType,
		}
	default:
		upd.Text = msg.Text
	}

	for _, reply := range b.orch.Dispatch(ctx, upd) {
		if _, err := b.api.Send(tgbotapi.NewMessage(msg.Chat.ID, reply)); err != nil {
			log.Error().Err(err).Int64("chat_id", msg.Chat.ID).Msg("sending reply")
		}
	}
}

// telegramDownloader resolves a Telegram file id and streams the file into a
// local temp file.
type telegramDownloader struct {
	api *tgbotapi.BotAPI
}

func (d *telegramDownloader) DownloadToTemp(ctx context.Context, fileID, ext string) (string, error) {
	file, err := d.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return "", fmt.Errorf("resolving file %s: %w", fileID, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, file.Link(d.api.Token), nil)
	if err != nil {
		return "", err
	}

	client := &http.Client{Timeout: 2 * time.Minute}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("downloading file %s: %w", fileID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("downloading file %s: status %d", fileID, resp.StatusCode)
	}

	tmpFile, err := os.CreateTemp("", "kenangan-*"+ext)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(tmpFile, resp.Body); err != nil {
		tmpFile.Close()
		os.Remove(tmpFile.Name())
		return "", fmt.Errorf("writing file %s: %w", fileID, err)
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpFile.Name())
		return "", err
	}

	log.Debug().Str("file_id", fileID).Str("path", tmpFile.Name()).Msg("media downloaded")
	return tmpFile.Name(), nil
}
