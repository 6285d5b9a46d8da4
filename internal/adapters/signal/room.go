package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/beingzuhairkhan/skillswap-rtc/internal/core"
)

func (ctl *Controller) handleJoin(sid core.SessionID, data []byte) {
	type joinPayload struct {
		Type   string `json:"type"`
		RoomID string `json:"roomId"`
	}
	var p joinPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad join payload")
		return
	}
	log.Info().Str("module", "signal").Str("sid", string(sid)).Str("room", p.RoomID).Msg("join-room")
	ctl.Hub.Join(sid, p.RoomID)
}

// handleSignal forwards the negotiation payload untouched. The roomId the
// client sends along is ignored; the membership table decides the scope.
func (ctl *Controller) handleSignal(sid core.SessionID, data []byte) {
	type signalPayload struct {
		Type   string          `json:"type"`
		RoomID string          `json:"roomId"`
		Signal json.RawMessage `json:"signal"`
	}
	var p signalPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad signal payload")
		return
	}
	if len(p.Signal) == 0 {
		return
	}
	ctl.Hub.Relay(sid, p.Signal)
}
