package state

import (
	"database/sql"
	"errors"
)

// UIPrefs holds the interface toggles restored across sessions.
type UIPrefs struct {
	ArtOnly      bool
	ShowPlaylist bool
}

// getUIPrefs returns the saved toggles, or nil when nothing has been saved
// yet (first run falls back to configuration).
func getUIPrefs(db *sql.DB) (*UIPrefs, error) {
	row := db.QueryRow(`SELECT art_only, show_playlist FROM ui_state WHERE id = 1`)

	var artOnly, showPlaylist bool
	err := row.Scan(&artOnly, &showPlaylist)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved prefs is not an error
	}
	if err != nil {
		return nil, err
	}

	return &UIPrefs{ArtOnly: artOnly, ShowPlaylist: showPlaylist}, nil
}

func saveUIPrefs(db *sql.DB, prefs UIPrefs) error {
	_, err := db.Exec(`
		INSERT INTO ui_state (id, art_only, show_playlist)
		VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			art_only = excluded.art_only,
			show_playlist = excluded.show_playlist
	`, prefs.ArtOnly, prefs.ShowPlaylist)
	return err
}
