// Copyright (c) 2026 OpenSinta. All rights reserved.
// Author: OpenSinta Authors

package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opensinta/opensinta/pkg/query"
)

func TestStringSlice(t *testing.T) {
	assert.Nil(t, query.StringSlice(""))
	assert.Equal(t, []string{"S1", "S2"}, query.StringSlice(" S1, ,S2 "))
}

func TestValues(t *testing.T) {
	assert.Nil(t, query.Values(nil))
	assert.Equal(t, []string{"S1", "S2", "S3"}, query.Values([]string{"S1", "S2,S3", ""}))
}
