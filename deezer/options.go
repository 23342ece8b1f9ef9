package deezer

import "context"

// Options describes what the current user is allowed to do on the
// platform.
type Options struct {
	Streaming         bool `json:"streaming"`
	StreamingDuration int  `json:"streaming_duration"` // seconds
	Offline           bool `json:"offline"`
	HQ                bool `json:"hq"`
	AdsDisplay        bool `json:"ads_display"`
	AdsAudio          bool `json:"ads_audio"`
	TooManyDevices    bool `json:"too_many_devices"`
	CanSubscribe      bool `json:"can_subscribe"`
	RadioSkips        int  `json:"radio_skips"` // 0 means unlimited
	Lossless          bool `json:"lossless"`
	Preview           bool `json:"preview"`
	Radio             bool `json:"radio"`
}

// GetOptions fetches the options for the current user.
func (c *Client) GetOptions(ctx context.Context) (*Options, error) {
	return fetch[Options](ctx, c, "/options")
}

// GetOptions fetches options with a one-off client. Use Client when
// making many requests.
func GetOptions(ctx context.Context) (*Options, error) {
	return New().GetOptions(ctx)
}
