package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeGenerator_Generate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	index := NewMockCodeIndex(ctrl)
	index.EXPECT().ExistsByCode(gomock.Any(), gomock.Any()).Return(false, nil)

	code, err := NewCodeGenerator(index, 0).Generate(context.Background())
	require.NoError(t, err)
	assert.Len(t, code, DefaultCodeLength)
	for _, r := range code {
		assert.True(t, strings.ContainsRune(DefaultCodeAlphabet, r), "unexpected symbol %q", r)
	}
}

func TestCodeGenerator_CustomLength(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	index := NewMockCodeIndex(ctrl)
	index.EXPECT().ExistsByCode(gomock.Any(), gomock.Any()).Return(false, nil)

	code, err := NewCodeGenerator(index, 12).Generate(context.Background())
	require.NoError(t, err)
	assert.Len(t, code, 12)
}

func TestCodeGenerator_RegeneratesOnCollision(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	index := NewMockCodeIndex(ctrl)
	var seen []string
	gomock.InOrder(
		index.EXPECT().ExistsByCode(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, code string) (bool, error) {
			seen = append(seen, code)
			return true, nil
		}),
		index.EXPECT().ExistsByCode(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, code string) (bool, error) {
			seen = append(seen, code)
			return false, nil
		}),
	)

	code, err := NewCodeGenerator(index, 0).Generate(context.Background())
	require.NoError(t, err)
	require.Len(t, seen, 2)
	assert.Equal(t, seen[1], code)
}

func TestCodeGenerator_GivesUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	index := NewMockCodeIndex(ctrl)
	index.EXPECT().ExistsByCode(gomock.Any(), gomock.Any()).Return(true, nil).Times(maxCodeAttempts)

	_, err := NewCodeGenerator(index, 0).Generate(context.Background())
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestCodeGenerator_IndexError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	index := NewMockCodeIndex(ctrl)
	index.EXPECT().ExistsByCode(gomock.Any(), gomock.Any()).Return(false, errors.New("db down"))

	_, err := NewCodeGenerator(index, 0).Generate(context.Background())
	assert.EqualError(t, err, "db down")
}

func TestMaskCode(t *testing.T) {
	assert.Equal(t, "AB***", maskCode("ABCD2345"))
	assert.Equal(t, "***", maskCode("A"))
}
