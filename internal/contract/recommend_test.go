package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGPA_String(t *testing.T) {
	v := 3.5
	assert.Equal(t, "N/A", GPA{}.String())
	assert.Equal(t, "not recorded", GPA{Available: true}.String())
	assert.Equal(t, "3.5", GPA{Available: true, Value: &v}.String())
}

func TestNewRecommendRequest(t *testing.T) {
	req := NewRecommendRequest("Jane Doe")
	assert.Equal(t, "Jane Doe", req.StudentName)
	assert.Nil(t, req.Now)
}

func TestRecommendError_Error(t *testing.T) {
	err := &RecommendError{Code: ErrInvalidName, Message: InvalidNameMessage}
	assert.Equal(t, "INVALID_NAME: please enter a valid name", err.Error())
}
