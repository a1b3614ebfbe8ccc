package wireform_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wireform/wireform"
)

func TestDefaultOptionsValid(t *testing.T) {
	require.NoError(t, wireform.DefaultOptions().Validate())
}

func TestOptionsRejectsZeroDepth(t *testing.T) {
	err := wireform.Options{MaxVariantDepth: 0}.Validate()
	require.Error(t, err)
}
