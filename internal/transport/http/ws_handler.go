package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"trivia-quiz/internal/app"
	"trivia-quiz/internal/domain"
)

// ProfileCookie identifies a browser profile across connections, standing in
// for the per-profile cookie jar of a single-page app.
const ProfileCookie = "trivia_profile"

const profileMaxAge = 365 * 24 * time.Hour

// Deps are the collaborators shared by every connection.
type Deps struct {
	Cookies      app.KeyValueStore
	Ledger       *app.ScoreLedger
	Source       app.QuestionSource
	IdentityName string
	Session      app.SessionConfig
	Logger       *zap.Logger
}

type WSHandler struct {
	deps     Deps
	logger   *zap.Logger
	upgrader websocket.Upgrader
}

func NewWSHandler(deps Deps) *WSHandler {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if deps.IdentityName == "" {
		deps.IdentityName = app.DefaultIdentityName
	}
	return &WSHandler{
		deps:   deps,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// ServeWS upgrades the request and runs one quiz session for the connection.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	profileID, header := h.profile(r)
	logger := h.logger.With(zap.String("profile", profileID))

	conn, err := h.upgrader.Upgrade(w, r, header)
	if err != nil {
		logger.Warn("ws upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	send := make(chan outboundMessage[any], 16)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		for msg := range send {
			if err := conn.WriteJSON(msg); err != nil {
				logger.Debug("ws write error", zap.Error(err))
				// keep draining so the session never blocks on a dead connection
				for range send {
				}
				return
			}
		}
	}()

	surface := newWSSurface(send)
	session := h.newSession(profileID, surface, logger)
	ctx := r.Context()

	send <- outboundMessage[any]{Type: "welcome", Payload: welcomePayload{ProfileID: profileID}}
	if err := session.Start(ctx); err != nil {
		send <- errorMessage(err)
	}

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			break
		}
		switch inbound.Type {
		case "submit":
			var payload submitPayload
			if len(inbound.Payload) > 0 {
				if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
					send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "invalid submit payload"}}
					continue
				}
			}
			total := len(session.Questions())
			surface.stage(payload.Answers)
			entry, err := session.Submit(ctx, payload.Username)
			if err != nil {
				send <- errorMessage(err)
				continue
			}
			send <- outboundMessage[any]{Type: "result", Payload: resultPayload{Score: entry.Score, Total: total, Entry: entry}}
		case "fetch":
			if err := session.FetchQuestions(ctx); err != nil {
				send <- errorMessage(err)
			}
		case "newPlayer":
			if err := session.NewPlayer(ctx); err != nil {
				send <- errorMessage(err)
			}
		default:
			send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "unsupported message type"}}
		}
	}

	close(send)
	<-writerDone
}

func (h *WSHandler) newSession(profileID string, surface app.Surface, logger *zap.Logger) *app.Session {
	cfg := h.deps.Session
	cfg.Logger = logger
	// rand sources are not safe to share between connections
	cfg.Builder = app.NewBuilder(nil)
	identity := app.NewIdentityStore(h.deps.Cookies, h.deps.IdentityName+"."+profileID, logger)
	return app.NewSession(identity, h.deps.Ledger, h.deps.Source, surface, cfg)
}

// profile returns the connection's profile id, issuing a new cookie when the
// request carries none.
func (h *WSHandler) profile(r *http.Request) (string, http.Header) {
	if c, err := r.Cookie(ProfileCookie); err == nil {
		if id, err := uuid.Parse(c.Value); err == nil {
			return id.String(), nil
		}
	}
	id := uuid.NewString()
	header := http.Header{}
	header.Add("Set-Cookie", (&http.Cookie{
		Name:     ProfileCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   int(profileMaxAge / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}).String())
	return id, header
}

func errorMessage(err error) outboundMessage[any] {
	message := err.Error()
	if errors.Is(err, domain.ErrFetch) {
		message = "could not load questions, try again"
	}
	return outboundMessage[any]{Type: "error", Payload: errorPayload{Message: message}}
}
