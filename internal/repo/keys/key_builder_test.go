package keys

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_builder_RequestThreshold(t *testing.T) {
	t.Run("minute", func(t *testing.T) {
		b := builder{}
		got := b.RequestThreshold("test", time.Minute)
		assert.Equal(t, append(requestThresholdPrefix[:], []byte{'t', 'e', 's', 't', 0x3c, 0, 0, 0}...), got)
	})

	t.Run("month fits uint32", func(t *testing.T) {
		b := builder{}
		got := b.RequestThreshold("test", time.Hour*24*30)
		assert.Equal(t, append(requestThresholdPrefix[:], []byte{'t', 'e', 's', 't', 0x00, 0x8d, 0x27, 0x00}...), got)
	})
}

func Test_builder_Account(t *testing.T) {
	tests := []struct {
		name  string
		login string
		want  []byte
	}{
		{
			name:  "simple",
			login: "acc1",
			want:  []byte{0x0, 0x1, 'a', 'c', 'c', '1'},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder()
			got := b.Account(tt.login)
			assert.Equalf(t, tt.want, got, "Account(%v)", tt.login)
		})
	}
}

func Test_builder_CollectedTweet(t *testing.T) {
	b := NewBuilder()
	got := b.CollectedTweet("1729960929805099056")
	assert.Equal(t, append(collectedTweetPrefix[:], []byte("1729960929805099056")...), got)
}
