// SPDX-License-Identifier: EPL-2.0

package device

import "strings"

// Usage selects the output category a stream is opened for. Backends
// without a notion of categories ignore it.
type Usage int

const (
	UsageMedia Usage = iota
	UsageVoiceCommunication
	UsageVoiceCommunicationSignalling
	UsageAlarm
	UsageNotification
	UsageNotificationRingtone
	UsageNotificationEvent
	UsageAssistanceAccessibility
	UsageAssistanceNavigationGuidance
	UsageAssistanceSonification
	UsageGame
	UsageAssistant
)

var usageNames = [...]string{
	UsageMedia:                        "media",
	UsageVoiceCommunication:           "voice-communication",
	UsageVoiceCommunicationSignalling: "voice-communication-signalling",
	UsageAlarm:                        "alarm",
	UsageNotification:                 "notification",
	UsageNotificationRingtone:         "notification-ringtone",
	UsageNotificationEvent:            "notification-event",
	UsageAssistanceAccessibility:      "assistance-accessibility",
	UsageAssistanceNavigationGuidance: "assistance-navigation-guidance",
	UsageAssistanceSonification:       "assistance-sonification",
	UsageGame:                         "game",
	UsageAssistant:                    "assistant",
}

func (u Usage) String() string {
	if u < 0 || int(u) >= len(usageNames) {
		return usageNames[UsageMedia]
	}
	return usageNames[u]
}

// UsageFromInt maps an integer enumerant to a Usage. Unknown values map
// to UsageMedia.
func UsageFromInt(v int) Usage {
	if v < 0 || v >= len(usageNames) {
		return UsageMedia
	}
	return Usage(v)
}

// ParseUsage maps a name such as "alarm" or "voice_communication" to a
// Usage. Unknown names map to UsageMedia.
func ParseUsage(name string) Usage {
	name = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for u, n := range usageNames {
		if n == name {
			return Usage(u)
		}
	}

	return UsageMedia
}
