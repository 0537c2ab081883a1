package ui

import (
	"net/url"

	"github.com/ytget/moodlists/internal/model"
)

// recordingOpener records every URL handed to it
type recordingOpener struct {
	urls []string
	err  error
}

func (o *recordingOpener) OpenURL(u *url.URL) error {
	o.urls = append(o.urls, u.String())
	return o.err
}

// recordingNotifier records notices instead of showing dialogs
type recordingNotifier struct {
	titles   []string
	messages []string
	errs     []error
}

func (n *recordingNotifier) Notify(title, message string) {
	n.titles = append(n.titles, title)
	n.messages = append(n.messages, message)
}

func (n *recordingNotifier) NotifyError(err error) {
	n.errs = append(n.errs, err)
}

func (n *recordingNotifier) count() int {
	return len(n.titles) + len(n.errs)
}

func testTable() *model.Table {
	return model.NewTable([]model.PlaylistRecord{
		model.NewPlaylistRecord("happy", "english", "Sunny Hits", "https://open.spotify.com/playlist/1"),
		model.NewPlaylistRecord("sad", "hindi", "Rainy Days", "https://open.spotify.com/playlist/2"),
		model.NewPlaylistRecord("happy", "hindi", "Broken Link", "link coming soon"),
		model.NewPlaylistRecord("happy", "hindi", "Bollywood Joy", "https://open.spotify.com/playlist/3"),
		model.NewPlaylistRecord("chill", "english", "Lo-Fi", "https://open.spotify.com/playlist/4"),
	})
}
