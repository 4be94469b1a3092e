package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

// AvatarColors represents the available avatar background colors
var AvatarColors = []string{
	"#FF6B6B", "#4ECDC4", "#45B7D1", "#96CEB4", "#FFEAA7",
	"#DDA0DD", "#98D8C8", "#F7DC6F", "#BB8FCE", "#85C1E9",
	"#F8C471", "#82E0AA", "#F1948A", "#D7BDE2", "#A9DFBF",
}

// RandomCommentAvatar picks a placeholder portrait for comments posted
// without one. pravatar serves 70 stock images keyed by the img parameter.
func RandomCommentAvatar() string {
	n, _ := rand.Int(rand.Reader, big.NewInt(70))
	return fmt.Sprintf("https://i.pravatar.cc/150?img=%d", n.Int64()+1)
}

// AvatarWithInitials generates an avatar for a new account from the
// holder's initials, on a random background color.
func AvatarWithInitials(initials string) string {
	colorIndex, _ := rand.Int(rand.Reader, big.NewInt(int64(len(AvatarColors))))
	// dicebear wants the hex without the leading #
	color := strings.TrimPrefix(AvatarColors[colorIndex.Int64()], "#")

	return fmt.Sprintf("https://api.dicebear.com/7.x/initials/svg?seed=%s&backgroundColor=%s",
		initials, color)
}

// InitialsFromName extracts initials from a full name
func InitialsFromName(name string) string {
	if name == "" {
		return "U"
	}

	words := []rune(name)
	initials := ""

	// Get first character
	initials += string(words[0])

	// Find space and get next character
	for i, char := range words {
		if char == ' ' && i+1 < len(words) {
			initials += string(words[i+1])
			break
		}
	}

	// If only one character, duplicate it
	if len(initials) == 1 {
		initials += initials
	}

	return initials
}
