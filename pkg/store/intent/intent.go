package intent

// Intent is a tagged message describing a requested state transition or a
// completed asynchronous outcome. Reducers receive every dispatched intent
// and must return their input unchanged (same reference) for intents they do
// not recognize.
type Intent interface {
	IntentType() string
}

// Init is dispatched once when the store is constructed, before any domain
// intent
type Init struct{}

func (Init) IntentType() string { return "[Store] Init" }

// RehydrationCompleted is dispatched once after persisted state has been
// merged into the initial state. The post-rehydration sanitizers (loading
// state reset, session validation) run only on this intent.
type RehydrationCompleted struct{}

func (RehydrationCompleted) IntentType() string { return "[Store] Rehydration completed" }
