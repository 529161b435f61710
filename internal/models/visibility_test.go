package models

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type VisibilityTestSuite struct {
	suite.Suite
}

func TestVisibilityTestSuite(t *testing.T) {
	suite.Run(t, new(VisibilityTestSuite))
}

func (s *VisibilityTestSuite) TestParseCategoryName_RecognizedGlyphs() {
	cases := map[string]Visibility{
		"📚 test": VisibilityPublic,
		"👻 test": VisibilityPrivate,
		"🔒 test": VisibilityPrivate,
	}

	for categoryName, expected := range cases {
		courseName, visibility, err := ParseCategoryName(categoryName)
		s.Require().NoError(err, categoryName)
		s.Equal("test", courseName)
		s.Equal(expected, visibility)
	}
}

func (s *VisibilityTestSuite) TestParseCategoryName_KeepsInnerSpaces() {
	courseName, _, err := ParseCategoryName("📚 ohjelmoinnin perusteet")
	s.Require().NoError(err)
	s.Equal("ohjelmoinnin perusteet", courseName)
}

func (s *VisibilityTestSuite) TestParseCategoryName_Unrecognized() {
	for _, name := range []string{"test", "📚test", "🎲 test", ""} {
		_, _, err := ParseCategoryName(name)
		s.ErrorIs(err, ErrUnrecognizedCategory, name)
	}
}

func (s *VisibilityTestSuite) TestCategoryName() {
	s.Equal("📚 test", CategoryName("test", VisibilityPublic))
	s.Equal("👻 test", CategoryName("test", VisibilityPrivate))
}

func (s *VisibilityTestSuite) TestCourseVisibility() {
	s.Equal(VisibilityPublic, (&Course{Name: "test"}).Visibility())
	s.Equal(VisibilityPrivate, (&Course{Name: "test", Private: true}).Visibility())
	s.True(VisibilityPrivate.IsPrivate())
}
