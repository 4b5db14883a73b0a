package bus

// subscriberSlot pairs a topic callback with its opaque context.
type subscriberSlot struct {
	cb  TopicHandler
	ctx any
}

// topicRecord is a topic's record: a name and an insertion-ordered,
// capacity-bounded list of subscribers.
type topicRecord struct {
	name string
	subs []subscriberSlot
}

// serviceRecord is a service's record.
type serviceRecord struct {
	name    string
	handler ServiceHandler
	mode    ServiceMode
	ctx     any
}

// actionRecord is an action's record. The goal payload is copied into a
// fixed-size array rather than retained as a slice of the caller's
// backing array, so there's no heap allocation of entities beyond the
// record itself.
type actionRecord struct {
	name     string
	goalCB   GoalHandler
	execCB   ExecuteHandler
	cancelCB CancelHandler
	ctx      any

	state           ActionState
	active          bool
	cancelRequested bool

	goalData [PayloadCapacity]byte
	goalLen  int
}

func (a *actionRecord) goal() []byte {
	return a.goalData[:a.goalLen]
}

// pendingRecord is a routing slot carrying a completed async response or
// action result from its producer back to the task that originated the
// request.
type pendingRecord struct {
	id         uint64
	targetName string
	task       TaskID
	isAction   bool

	asyncCB  AsyncHandler
	resultCB ResultHandler
	fbCB     FeedbackHandler
	ctx      any

	responseData [PayloadCapacity]byte
	responseLen  int
	actionState  ActionState
	ready        bool
}

func (p *pendingRecord) response() []byte {
	return p.responseData[:p.responseLen]
}

func (p *pendingRecord) setResponse(data []byte) {
	p.responseLen = copy(p.responseData[:], data)
}
