package convert_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"macconv/internal/domain"
	"macconv/internal/services/convert"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name  string
		input string
		f     domain.Format
		want  []string
	}{
		{"bare fallback", "aabbccddeeff", domain.Format{}, []string{"aa:bb:cc:dd:ee:ff"}},
		{"colon to dashed", "AA:BB:CC:DD:EE:FF", domain.Format{Dashed: true}, []string{"aa-bb-cc-dd-ee-ff"}},
		{"cisco caps", "aabb.ccdd.eeff", domain.Format{Cisco: true, Caps: true}, []string{"AABB.CCDD.EEFF"}},
		{"caps only falls back", "aa-bb-cc-dd-ee-ff", domain.Format{Caps: true}, []string{"AA:BB:CC:DD:EE:FF"}},
		{"idempotent colon", "00:1a:2b:3c:4d:5e", domain.Format{Colon: true}, []string{"00:1a:2b:3c:4d:5e"}},
		{
			"dashed and cisco",
			"001A2B3C4D5E",
			domain.Format{Dashed: true, Cisco: true},
			[]string{"001a.2b3c.4d5e", "00-1a-2b-3c-4d-5e"},
		},
		{
			"everything",
			"00.1a.2b.3c.4d.5e",
			domain.Format{Dashed: true, Colon: true, Cisco: true, Caps: true},
			[]string{"001A.2B3C.4D5E", "00:1A:2B:3C:4D:5E", "00-1A-2B-3C-4D-5E"},
		},
	}
	svc := convert.New(zerolog.Nop())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Convert(tt.input, tt.f)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvert_InvalidProducesNoLines(t *testing.T) {
	svc := convert.New(zerolog.Nop())
	for _, in := range []string{"gg:hh:ii:jj:kk:ll", "aa:bb:cc:dd:ee"} {
		got, err := svc.Convert(in, domain.Format{Dashed: true, Colon: true, Cisco: true})
		assert.Nil(t, got)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidAddress))
	}
}

func TestConvert_DebugLogging(t *testing.T) {
	var buf bytes.Buffer
	svc := convert.New(zerolog.New(&buf).Level(zerolog.DebugLevel))

	_, err := svc.Convert("aabb.ccdd.eeff", domain.Format{})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"grammar":"quads"`)
	assert.Contains(t, buf.String(), `"mac":"aa:bb:cc:dd:ee:ff"`)

	buf.Reset()
	_, err = svc.Convert("zz", domain.Format{})
	require.Error(t, err)
	assert.Contains(t, buf.String(), `"message":"rejected"`)
}
