// Copyright 2021 - 2022 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package moerr

import (
	"context"
	"errors"
	"io"
	"testing"

	cerrors "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsMoErrCode(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		err      error
		code     uint16
		expected bool
	}{
		{
			name:     "nil error is ok",
			err:      nil,
			code:     Ok,
			expected: true,
		},
		{
			name:     "nil error is not internal",
			err:      nil,
			code:     ErrInternal,
			expected: false,
		},
		{
			name:     "not supported",
			err:      NewNotSupported(ctx, "key type %T", struct{}{}),
			code:     ErrNotSupported,
			expected: true,
		},
		{
			name:     "wrapped bad config",
			err:      cerrors.Wrap(NewBadConfig(ctx, "capacity"), "load"),
			code:     ErrBadConfig,
			expected: true,
		},
		{
			name:     "standard error",
			err:      errors.New("some error"),
			code:     ErrInternal,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsMoErrCode(tt.err, tt.code))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	ctx := context.Background()

	require.Equal(t, "internal error: slot 3", NewInternalError(ctx, "slot %d", 3).Error())
	require.Equal(t, "not supported: chan int", NewNotSupported(ctx, "%s", "chan int").Error())
	require.Equal(t, "invalid configuration: workers", NewBadConfig(ctx, "workers").Error())
	require.Equal(t, "internal error: probe table full", NewInternalErrorNoCtx("probe table %s", "full").Error())

	err := NewInvalidState(ctx, "size %d", 3)
	require.Equal(t, "invalid state size 3", err.Error())
	require.Equal(t, ErrInvalidState, err.ErrorCode())
}

func TestConvertGoError(t *testing.T) {
	ctx := context.Background()

	require.Nil(t, ConvertGoError(ctx, nil))

	me := NewBadConfig(ctx, "x")
	require.Equal(t, error(me), ConvertGoError(ctx, me))

	require.True(t, IsMoErrCode(ConvertGoError(ctx, io.EOF), ErrUnexpectedEOF))
	require.True(t, IsMoErrCode(ConvertGoError(ctx, errors.New("boom")), ErrInternal))
}

func TestConvertPanicError(t *testing.T) {
	ctx := context.Background()

	me := NewNotSupportedNoCtx("x")
	require.Same(t, me, ConvertPanicError(ctx, me))
	require.True(t, IsMoErrCode(ConvertPanicError(ctx, "boom"), ErrInternal))
}
