package guild

import (
	"fmt"
	"math"

	"github.com/KirkDiggler/coursebot/internal/models"
	"github.com/bwmarrin/discordgo"
)

// CourseNameFromCategory strips the visibility glyph from a category name.
// Names without a recognized glyph return models.ErrUnrecognizedCategory.
func CourseNameFromCategory(categoryName string) (string, error) {
	courseName, _, err := models.ParseCategoryName(categoryName)
	if err != nil {
		return "", fmt.Errorf("%q: %w", categoryName, err)
	}
	return courseName, nil
}

// CourseNameFromChannel is CourseNameFromCategory for a channel
func CourseNameFromChannel(channel *discordgo.Channel) (string, error) {
	if channel == nil {
		return "", ErrNilInput
	}
	return CourseNameFromCategory(channel.Name)
}

// InviteURL returns the shareable link of an invite
func InviteURL(invite *discordgo.Invite) string {
	return "https://discord.gg/" + invite.Code
}

// MinutesAndSeconds formats milliseconds as M:SS. Negative durations get a
// leading minus sign.
func MinutesAndSeconds(ms int64) string {
	sign := ""
	if ms < 0 {
		sign = "-"
		ms = -ms
	}

	minutes := ms / 60000
	seconds := int64(math.Round(float64(ms%60000) / 1000))
	if seconds == 60 {
		minutes++
		seconds = 0
	}
	if minutes == 0 && seconds == 0 {
		sign = ""
	}
	return fmt.Sprintf("%s%d:%02d", sign, minutes, seconds)
}
