package vision

import "context"

// MockClient permite tests sin llamar al detector real.
type MockClient struct {
	Detection Detection
	Err       error
}

func (m *MockClient) Detect(ctx context.Context, imageURL string) (Detection, error) {
	return m.Detection, m.Err
}
