package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/atomicstack/chatmenu/internal/component"
	"github.com/atomicstack/chatmenu/internal/dispatcher"
	"github.com/atomicstack/chatmenu/internal/store"
)

func press(t *testing.T, s *Session, last dispatcher.Result, label string) dispatcher.Result {
	t.Helper()
	for _, row := range last.Payload.Keyboard {
		for _, btn := range row {
			if btn.Label == label {
				res, err := s.Dispatcher.Handle(context.Background(), dispatcher.Update{ChatID: s.ChatID, Kind: dispatcher.UpdateButton, Data: btn.Data})
				require.NoError(t, err)
				return res
			}
		}
	}
	t.Fatalf("no button %q", label)
	return dispatcher.Result{}
}

func sendText(t *testing.T, s *Session, text string) dispatcher.Result {
	t.Helper()
	msg := component.Message{Text: text}
	res, err := s.Dispatcher.Handle(context.Background(), dispatcher.Update{ChatID: s.ChatID, Kind: dispatcher.UpdateMessage, Message: &msg})
	require.NoError(t, err)
	return res
}

func TestOpenUsesMemoryStoreByDefault(t *testing.T) {
	s, err := Open(context.Background(), Config{ChatID: "c"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	_, ok := s.Store.(*store.SQLite)
	require.False(t, ok)

	res, err := s.Dispatcher.Open(context.Background(), "c")
	require.NoError(t, err)
	require.Equal(t, int64(1), res.MessageID)
	require.Equal(t, res.MessageID, s.Console.Current().ID)
}

func TestSubmitNotifiesWithLocalizedTime(t *testing.T) {
	orig := now
	now = func() time.Time { return time.Date(2024, 5, 6, 7, 8, 0, 0, time.UTC) }
	t.Cleanup(func() { now = orig })

	s, err := Open(context.Background(), Config{ChatID: "c"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	res, err := s.Dispatcher.Open(context.Background(), "c")
	require.NoError(t, err)
	press(t, s, res, "name: —")
	res = sendText(t, s, "Ada")
	res = press(t, s, res, "✅ Save")

	require.Equal(t, dispatcher.StatusHandled, res.Status)
	require.Equal(t, []string{"Saved at 2024-05-06 07:08."}, s.Console.TakeNotices())
}

func TestSQLiteSessionSurvivesRestart(t *testing.T) {
	cfg := Config{ChatID: "c", Database: filepath.Join(t.TempDir(), "menu.db")}

	s, err := Open(context.Background(), cfg)
	require.NoError(t, err)
	res, err := s.Dispatcher.Open(context.Background(), "c")
	require.NoError(t, err)
	res = press(t, s, res, "name: —")
	require.NotNil(t, res.Pending)
	require.NoError(t, s.Close())

	s, err = Open(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	res = sendText(t, s, "Grace")
	require.Equal(t, dispatcher.StatusHandled, res.Status)
	require.Equal(t, "name: Grace", res.Payload.Keyboard[0][0].Label)
}

func TestOpenLoadsCatalogOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("menu:\n  name-required: \"Name first!\"\n"), 0o600))

	s, err := Open(context.Background(), Config{ChatID: "c", Catalog: path})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.Equal(t, "Name first!", s.Catalog.Localize("menu.name-required", nil))
	require.Equal(t, "Please send a text message.", s.Catalog.Localize("errors.text-required", nil))
}

func TestOpenRejectsMissingCatalog(t *testing.T) {
	_, err := Open(context.Background(), Config{ChatID: "c", Catalog: filepath.Join(t.TempDir(), "missing.yaml")})
	require.Error(t, err)
}
