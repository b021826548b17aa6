package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComplaintBeforeCreateAssignsID(t *testing.T) {
	complaint := &Complaint{}
	require.NoError(t, complaint.BeforeCreate(nil))
	require.NotEmpty(t, complaint.ComplaintID)

	// An existing ID is kept
	fixed := &Complaint{ComplaintID: "abc"}
	require.NoError(t, fixed.BeforeCreate(nil))
	require.Equal(t, "abc", fixed.ComplaintID)
}

func TestComplaintReference(t *testing.T) {
	complaint := &Complaint{ComplaintID: "a1b2c3d4-e5f6-7890-abcd-ef1234567890"}

	ref := complaint.Reference()
	require.Equal(t, "A1B2C3D4", ref)
	require.Len(t, ref, 8)
	require.Equal(t, strings.ToUpper(ref), ref)
}
