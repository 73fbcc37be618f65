//go:build !http_enabled

package main

import (
	"testing"

	"github.com/marisvali/tetro/world"
	"github.com/stretchr/testify/assert"
)

// Does the uploader drain the channel and stop when it is closed?
func TestUploadPlaythroughs(t *testing.T) {
	ch := make(chan *world.Playthrough, 3)
	for range 3 {
		p := world.NewPlaythrough(0, world.Level{}, ReleaseVersion)
		ch <- p.Clone()
	}
	close(ch)

	done := make(chan struct{})
	go func() {
		UploadPlaythroughs("test", ch)
		close(done)
	}()
	<-done
	assert.Empty(t, ch)
}
