// Package rtc builds the ICE configuration handed to clients. The server
// never opens a PeerConnection itself; this is configuration cargo in the
// shape browsers expect.
package rtc

import "github.com/pion/webrtc/v4"

// Servers builds the ICE server list from config, falling back to a
// public STUN server when none is configured.
func Servers(urls []string, username, credential string) []webrtc.ICEServer {
	if len(urls) == 0 {
		urls = []string{"stun:stun.l.google.com:19302"}
	}
	s := webrtc.ICEServer{URLs: urls}
	if username != "" {
		s.Username = username
		s.Credential = credential
	}
	return []webrtc.ICEServer{s}
}
