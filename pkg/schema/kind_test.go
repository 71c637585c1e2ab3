/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		k    Kind
		want string
	}{
		{Kind_null, "null"},
		{Kind_String, "string"},
		{Kind_Integer, "integer"},
		{Kind_Float, "float"},
		{Kind_Decimal, "decimal"},
		{Kind_Date, "date"},
		{Kind_Time, "time"},
		{Kind_Count, "unknown"},
		{Kind(77), "unknown"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, tt.k.String())
	}
}

func TestValues_String(t *testing.T) {
	require := require.New(t)
	require.Equal("2/1/13", Date{2013, 2, 1}.String())
	require.Equal("12/31/69", Date{2069, 12, 31}.String())
	require.Equal("1:23:45", Time{1, 23, 45}.String())
	require.Equal("0:00:00", Time{}.String())
}
