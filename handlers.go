package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/google/uuid"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/jtanningbed/nfl-play-animate/animation"
	"github.com/jtanningbed/nfl-play-animate/models"
	"github.com/jtanningbed/nfl-play-animate/templates"
)

type server struct {
	db       *sql.DB
	animator *animation.Animator
	defaults animation.Config
	cache    *animationCache
}

func newServer(db *sql.DB, resolver *animation.Resolver, defaults animation.Config) *server {
	return &server{
		db:       db,
		animator: animation.NewAnimator(resolver),
		defaults: defaults,
		cache:    newAnimationCache(10*time.Minute, 256),
	}
}

func (s *server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.homeHandler)

	mux.HandleFunc("GET /api/weeks", s.weeksHandler)
	mux.HandleFunc("GET /api/games/{week}", s.gamesHandler)
	mux.HandleFunc("GET /api/plays/{game_id}", s.playsHandler)
	mux.HandleFunc("GET /api/play/{game_id}/{play_id}", s.playDataHandler)
	mux.HandleFunc("GET /api/animation/{game_id}/{play_id}", s.animationHandler)

	return logRequests(mux)
}

// withConn runs fn on a dedicated connection and always hands it back.
func (s *server) withConn(ctx context.Context, fn func(conn *sql.Conn) error) error {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()
	return fn(conn)
}

func (s *server) homeHandler(w http.ResponseWriter, r *http.Request) {
	var weeks []int
	err := s.withConn(r.Context(), func(conn *sql.Conn) error {
		var err error
		weeks, err = getWeeks(r.Context(), conn)
		return err
	})
	if err != nil {
		fmt.Printf("❌ Loading weeks failed: %v\n", err)
		http.Error(w, "Could not load weeks", http.StatusInternalServerError)
		return
	}

	data := templates.HomePageData{Weeks: weeks}
	templ.Handler(templates.Home(data)).ServeHTTP(w, r)
}

func (s *server) weeksHandler(w http.ResponseWriter, r *http.Request) {
	var resp models.WeeksResponse
	err := s.withConn(r.Context(), func(conn *sql.Conn) error {
		var err error
		resp.Weeks, err = getWeeks(r.Context(), conn)
		return err
	})
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, resp)
}

func (s *server) gamesHandler(w http.ResponseWriter, r *http.Request) {
	week, err := strconv.Atoi(r.PathValue("week"))
	if err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "week must be an integer")
		return
	}

	var resp models.GamesResponse
	err = s.withConn(r.Context(), func(conn *sql.Conn) error {
		var err error
		resp.Games, err = getGamesByWeek(r.Context(), conn, week)
		return err
	})
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, resp)
}

func (s *server) playsHandler(w http.ResponseWriter, r *http.Request) {
	gameID, err := strconv.ParseInt(r.PathValue("game_id"), 10, 64)
	if err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "game_id must be an integer")
		return
	}

	var resp models.PlaysResponse
	err = s.withConn(r.Context(), func(conn *sql.Conn) error {
		var err error
		resp.Plays, err = getPlaysByGame(r.Context(), conn, gameID)
		return err
	})
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, resp)
}

func (s *server) playDataHandler(w http.ResponseWriter, r *http.Request) {
	gameID, playID, ok := playParams(w, r)
	if !ok {
		return
	}

	data, err := s.loadPlay(r.Context(), gameID, playID)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, data)
}

func (s *server) animationHandler(w http.ResponseWriter, r *http.Request) {
	gameID, playID, ok := playParams(w, r)
	if !ok {
		return
	}
	cfg, err := configFromQuery(s.defaults, r)
	if err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	key := animationCacheKey(gameID, playID, cfg)
	if anim, ok := s.cache.get(key); ok {
		writeJSON(w, anim)
		return
	}

	data, err := s.loadPlay(r.Context(), gameID, playID)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}

	anim, err := s.animator.BuildPlay(*data, cfg)
	if err != nil {
		fmt.Printf("❌ Animation for game %d play %d failed: %v\n", gameID, playID, err)
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}
	fmt.Printf("📊 Built %d frames for game %d play %d\n", len(anim.Frames)+1, gameID, playID)

	s.cache.put(key, anim)
	writeJSON(w, anim)
}

func (s *server) loadPlay(ctx context.Context, gameID, playID int64) (*models.PlayData, error) {
	var data *models.PlayData
	err := s.withConn(ctx, func(conn *sql.Conn) error {
		var err error
		data, err = getPlayData(ctx, conn, gameID, playID)
		return err
	})
	return data, err
}

func playParams(w http.ResponseWriter, r *http.Request) (int64, int64, bool) {
	gameID, err := strconv.ParseInt(r.PathValue("game_id"), 10, 64)
	if err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "game_id must be an integer")
		return 0, 0, false
	}
	playID, err := strconv.ParseInt(r.PathValue("play_id"), 10, 64)
	if err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, "play_id must be an integer")
		return 0, 0, false
	}
	return gameID, playID, true
}

// configFromQuery overrides defaults with any animation settings present in
// the query string.
func configFromQuery(defaults animation.Config, r *http.Request) (animation.Config, error) {
	cfg := defaults
	q := r.URL.Query()

	ints := []struct {
		name string
		dst  *int
	}{
		{"frame_duration", &cfg.FrameDuration},
		{"transition_duration", &cfg.TransitionDuration},
		{"slider_transition_duration", &cfg.SliderTransitionDuration},
		{"marker_size", &cfg.MarkerSize},
	}
	for _, p := range ints {
		v := q.Get(p.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return cfg, fmt.Errorf("%s must be a non-negative integer", p.name)
		}
		*p.dst = n
	}

	if v := q.Get("redraw"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("redraw must be a boolean")
		}
		cfg.Redraw = b
	}
	if v := q.Get("field_color"); v != "" {
		c, err := colorful.Hex(v)
		if err != nil {
			return cfg, fmt.Errorf("field_color must be a hex color")
		}
		cfg.FieldColor = strings.ToUpper(c.Hex())
	}
	return cfg, nil
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		fmt.Printf("❌ Encoding response failed: %v\n", err)
	}
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{"detail": detail}); err != nil {
		fmt.Printf("❌ Encoding error response failed: %v\n", err)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)

		fmt.Printf("🏈 %s %s %s %d %s\n", id[:8], r.Method, r.URL.Path, rec.status, time.Since(start).Round(time.Microsecond))
	})
}
