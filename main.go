package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/vinyl/internal/albumart"
	"github.com/llehouerou/vinyl/internal/app"
	"github.com/llehouerou/vinyl/internal/config"
	"github.com/llehouerou/vinyl/internal/errmsg"
	"github.com/llehouerou/vinyl/internal/lastfm"
	"github.com/llehouerou/vinyl/internal/mpd"
	"github.com/llehouerou/vinyl/internal/mpris"
	"github.com/llehouerou/vinyl/internal/state"
	"github.com/llehouerou/vinyl/internal/ui/layout"
	"github.com/llehouerou/vinyl/internal/ui/styles"
)

// pendingScrobbleMaxAge is how long failed scrobbles stay queued for retry.
const pendingScrobbleMaxAge = 30 * 24 * time.Hour

// teardownTimeout bounds the final image delete write. A terminal that
// stopped reading would otherwise block the exit forever.
const teardownTimeout = 2 * time.Second

func main() {
	lastfmAuth := flag.Bool("lastfm-auth", false, "link a Last.fm account for scrobbling and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fatal(errmsg.Format(errmsg.OpConfigLoad, err))
	}
	if err := cfg.Validate(); err != nil {
		fatal(errmsg.Format(errmsg.OpConfigValidate, err))
	}

	theme, err := styles.FromConfig(cfg.Theme)
	if err != nil {
		fatal(errmsg.Format(errmsg.OpConfigValidate, err))
	}
	styles.SetDefault(theme)

	st, err := state.Open()
	if err != nil {
		fatal(errmsg.Format(errmsg.OpStateOpen, err))
	}

	if *lastfmAuth {
		err := runLastfmAuth(cfg, st)
		_ = st.Close()
		if err != nil {
			fatal(errmsg.Format(errmsg.OpLastfmAuth, err))
		}
		return
	}

	font := layout.FontSize{W: cfg.FontWidth, H: cfg.FontHeight}
	if font.W == 0 {
		font.W, font.H = albumart.CellSize()
	}

	cache, _ := albumart.NewCache("") // nil cache just re-encodes every render
	art := albumart.NewPresenter(albumart.Detect(font.W, font.H), cache)
	go cache.Prune(albumart.DefaultMaxAge)
	go st.DeleteOldPendingScrobbles(pendingScrobbleMaxAge)

	conn, err := mpd.Dial(cfg.MPD.Address, cfg.MPD.Password)
	if err != nil {
		_ = st.Close()
		fatal(errmsg.Format(errmsg.OpDaemonConnect, err))
	}

	m, err := app.New(cfg, font, conn, st, art, scrobbler(cfg, st))
	if err != nil {
		_ = conn.Close()
		_ = st.Close()
		fatal(errmsg.Format(errmsg.OpConfigValidate, err))
	}
	m.Redial = func() (mpd.Interface, error) {
		return mpd.Dial(cfg.MPD.Address, cfg.MPD.Password)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())

	var bridge *mpris.Adapter
	if cfg.MprisEnabled() {
		b, err := mpris.New(m.Mpris, p, cfg.MusicDirectory)
		if err != nil {
			fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpMprisStart, err))
		} else {
			bridge = b
		}
	}

	finalModel, runErr := p.Run()
	if bridge != nil {
		_ = bridge.Close()
	}

	exitErr := runErr
	if fm, ok := finalModel.(app.Model); ok && exitErr == nil {
		exitErr = fm.Exit().Err
	}
	// The loop has released the terminal; wipe any image the protocol
	// still holds on screen.
	if err := albumart.FinalHide(os.Stdout, teardownTimeout); err != nil && exitErr == nil {
		exitErr = err
	}

	if exitErr != nil {
		fatal(fmt.Sprintf("vinyl: %v", exitErr))
	}
}

// scrobbler returns the Last.fm submitter, or nil when scrobbling is not
// configured or the account has not been linked yet.
func scrobbler(cfg *config.Config, st *state.Manager) lastfm.Submitter {
	if !cfg.HasLastfmConfig() {
		return nil
	}
	sess, err := st.GetLastfmSession()
	if err != nil || sess == nil {
		fmt.Fprintln(os.Stderr, "Last.fm is configured but not linked; run vinyl -lastfm-auth")
		return nil
	}
	client := lastfm.New(cfg.Lastfm.APIKey, cfg.Lastfm.APISecret)
	client.SetSessionKey(sess.SessionKey)
	return client
}

// runLastfmAuth walks the desktop authorization flow: request a token,
// send the user to the grant page, then trade the confirmed token for a
// session key and persist it.
func runLastfmAuth(cfg *config.Config, st *state.Manager) error {
	if !cfg.HasLastfmConfig() {
		return errors.New("set lastfm.api_key and lastfm.api_secret in the config first")
	}

	client := lastfm.New(cfg.Lastfm.APIKey, cfg.Lastfm.APISecret)
	token, err := client.GetToken()
	if err != nil {
		return err
	}

	url := client.GetAuthURL(token)
	fmt.Println("Authorize vinyl in the browser, then come back and press Enter.")
	fmt.Println()
	fmt.Println("  " + url)
	fmt.Println()
	_ = lastfm.OpenBrowser(url)
	_, _ = fmt.Scanln()

	username, sessionKey, err := client.GetSession(token)
	if err != nil {
		return err
	}
	if err := st.SaveLastfmSession(username, sessionKey); err != nil {
		return err
	}

	fmt.Printf("Linked Last.fm account %s. Scrobbling is active on the next run.\n", username)
	return nil
}

func fatal(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
