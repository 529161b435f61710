package guild

import (
	"testing"

	"github.com/KirkDiggler/coursebot/internal/models"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
)

type NamingTestSuite struct {
	suite.Suite
}

func TestNamingTestSuite(t *testing.T) {
	suite.Run(t, new(NamingTestSuite))
}

func (s *NamingTestSuite) TestCourseNameFromCategory() {
	for _, categoryName := range []string{"📚 test", "👻 test", "🔒 test"} {
		courseName, err := CourseNameFromCategory(categoryName)
		s.Require().NoError(err, categoryName)
		s.Equal("test", courseName)
	}
}

func (s *NamingTestSuite) TestCourseNameFromChannel() {
	courseName, err := CourseNameFromChannel(&discordgo.Channel{Name: "🔒 test"})
	s.Require().NoError(err)
	s.Equal("test", courseName)

	_, err = CourseNameFromChannel(nil)
	s.ErrorIs(err, ErrNilInput)
}

func (s *NamingTestSuite) TestCourseNameFromCategory_Unrecognized() {
	_, err := CourseNameFromCategory("test")
	s.ErrorIs(err, models.ErrUnrecognizedCategory)
}

func (s *NamingTestSuite) TestMinutesAndSeconds() {
	s.Equal("5:05", MinutesAndSeconds(305000))
	s.Equal("0:00", MinutesAndSeconds(0))
	s.Equal("0:59", MinutesAndSeconds(59000))
	s.Equal("1:00", MinutesAndSeconds(59999))
	s.Equal("12:30", MinutesAndSeconds(750000))
}

func (s *NamingTestSuite) TestMinutesAndSeconds_Negative() {
	s.Equal("-5:05", MinutesAndSeconds(-305000))
	s.Equal("-1:00", MinutesAndSeconds(-59999))
	s.Equal("0:00", MinutesAndSeconds(-400))
}

func (s *NamingTestSuite) TestInviteURL() {
	s.Equal("https://discord.gg/abc", InviteURL(&discordgo.Invite{Code: "abc"}))
}
