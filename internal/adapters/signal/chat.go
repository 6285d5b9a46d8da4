package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/beingzuhairkhan/skillswap-rtc/internal/core"
)

func (ctl *Controller) handleChat(sid core.SessionID, data []byte) {
	type chatPayload struct {
		Type    string `json:"type"`
		RoomID  string `json:"roomId"`
		Message string `json:"message"`
		IsAI    bool   `json:"isAI"`
	}
	var p chatPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad chat payload")
		return
	}
	if p.Message == "" {
		return
	}
	ctl.Hub.Chat(sid, p.Message, p.IsAI)
}

func (ctl *Controller) handleToggle(sid core.SessionID, event string, data []byte) {
	type togglePayload struct {
		Type    string `json:"type"`
		RoomID  string `json:"roomId"`
		Enabled bool   `json:"enabled"`
	}
	var p togglePayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad toggle payload")
		return
	}
	ctl.Hub.Toggle(sid, event, p.Enabled)
}

func (ctl *Controller) handleBoard(sid core.SessionID, event string, data []byte) {
	type boardPayload struct {
		Type   string          `json:"type"`
		RoomID string          `json:"roomId"`
		Stroke json.RawMessage `json:"stroke"`
	}
	var p boardPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad board payload")
		return
	}
	ctl.Hub.Board(sid, event, p.Stroke)
}
