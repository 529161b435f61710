package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"testing"

	"github.com/KirkDiggler/coursebot/internal/models"
	courseRepo "github.com/KirkDiggler/coursebot/internal/repositories/course"
	courseService "github.com/KirkDiggler/coursebot/internal/services/course"
	"github.com/stretchr/testify/suite"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	messagingService Service
	ctx              context.Context

	testCourse *models.Course
}

func (s *MessagingServiceTestSuite) SetupTest() {
	svc, err := New(&Config{Source: rand.NewSource(1)})
	s.Require().NoError(err)
	s.messagingService = svc
	s.ctx = context.Background()

	s.testCourse = &models.Course{
		Code:     "TKT-101",
		FullName: "Introduction to Programming",
		Name:     "ohpe",
	}
}

func TestMessagingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}

func (s *MessagingServiceTestSuite) TestGetCourseCreatedMessage() {
	output, err := s.messagingService.GetCourseCreatedMessage(s.ctx, &GetCourseCreatedMessageInput{
		Course:       s.testCourse,
		CategoryName: "📚 ohpe",
		ChannelCount: 3,
	})

	s.Require().NoError(err)
	s.NotEmpty(output.Title)
	s.Contains(output.Message, "**Introduction to Programming** (TKT-101)")
	s.Contains(output.Message, "📚 ohpe with 3 channels")
	s.Contains(output.Message, "`/join ohpe`")
}

func (s *MessagingServiceTestSuite) TestGetCourseRemovedMessage() {
	output, err := s.messagingService.GetCourseRemovedMessage(s.ctx, &GetCourseRemovedMessageInput{Name: "ohpe", Removed: true})
	s.Require().NoError(err)
	s.Equal("Removed course **ohpe**.", output.Message)

	output, err = s.messagingService.GetCourseRemovedMessage(s.ctx, &GetCourseRemovedMessageInput{Name: "ohpe"})
	s.Require().NoError(err)
	s.Contains(output.Message, "nothing was removed")
}

func (s *MessagingServiceTestSuite) TestGetCourseListMessage() {
	output, err := s.messagingService.GetCourseListMessage(s.ctx, &GetCourseListMessageInput{})
	s.Require().NoError(err)
	s.Equal("No courses have been created yet.", output.Message)

	private := &models.Course{Code: "TKT-200", FullName: "Secret Course", Name: "secret", Private: true}
	output, err = s.messagingService.GetCourseListMessage(s.ctx, &GetCourseListMessageInput{
		Courses: []*models.Course{s.testCourse, private},
	})
	s.Require().NoError(err)
	s.Equal("📚 TKT-101 - Introduction to Programming\n👻 TKT-200 - Secret Course", output.Message)
}

func (s *MessagingServiceTestSuite) TestGetCourseJoinedMessage() {
	output, err := s.messagingService.GetCourseJoinedMessage(s.ctx, &GetCourseJoinedMessageInput{
		UserName:   "kalle",
		CourseName: "ohpe",
	})
	s.Require().NoError(err)
	s.Contains(output.Message, "kalle")
	s.Contains(output.Message, "ohpe")

	_, err = s.messagingService.GetCourseJoinedMessage(s.ctx, &GetCourseJoinedMessageInput{})
	s.Error(err)
}

func (s *MessagingServiceTestSuite) TestGetInvitationMessage() {
	output, err := s.messagingService.GetInvitationMessage(s.ctx, &GetInvitationMessageInput{Target: "guide"})
	s.Require().NoError(err)
	s.Contains(output.Message, "no #guide channel")

	output, err = s.messagingService.GetInvitationMessage(s.ctx, &GetInvitationMessageInput{
		Target:    "guide",
		Posted:    true,
		InviteURL: "https://discord.gg/abc",
	})
	s.Require().NoError(err)
	s.Contains(output.Message, "https://discord.gg/abc")

	output, err = s.messagingService.GetInvitationMessage(s.ctx, &GetInvitationMessageInput{Target: "ohpe", Posted: true})
	s.Require().NoError(err)
	s.Contains(output.Message, "**ohpe**")
}

func (s *MessagingServiceTestSuite) TestGetErrorMessage_KnownErrors() {
	cases := []struct {
		err   error
		title string
	}{
		{courseService.ErrCourseNotFound, "Course Not Found"},
		{fmt.Errorf("failed to create course: %w", courseRepo.ErrCourseAlreadyExists), "Course Exists"},
		{courseService.ErrInvalidInput, "Missing Details"},
		{models.ErrUnrecognizedCategory, "Unknown Category"},
	}

	for _, tc := range cases {
		output, err := s.messagingService.GetErrorMessage(s.ctx, &GetErrorMessageInput{Err: tc.err})
		s.Require().NoError(err)
		s.Equal(tc.title, output.Title, tc.err.Error())
	}
}

func (s *MessagingServiceTestSuite) TestGetErrorMessage_Unknown() {
	output, err := s.messagingService.GetErrorMessage(s.ctx, &GetErrorMessageInput{Err: errors.New("boom")})
	s.Require().NoError(err)
	s.Equal("Error", output.Title)
	s.NotEmpty(output.Message)
}

func (s *MessagingServiceTestSuite) TestNilInputs() {
	_, err := s.messagingService.GetErrorMessage(s.ctx, nil)
	s.Error(err)

	_, err = s.messagingService.GetCourseCreatedMessage(s.ctx, &GetCourseCreatedMessageInput{})
	s.Error(err)
}

func (s *MessagingServiceTestSuite) TestConcurrentMessages() {
	const workers = 8
	errs := make(chan error, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := 0; n < 200; n++ {
				output, err := s.messagingService.GetCourseJoinedMessage(s.ctx, &GetCourseJoinedMessageInput{
					UserName:   "matti",
					CourseName: "ohpe",
				})
				if err != nil {
					errs <- err
					return
				}
				if output.Message == "" {
					errs <- errors.New("empty joined message")
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		s.NoError(err)
	}
}
