package ai

// request/result channel capacities. Small on purpose: chatter is
// disposable, and a full channel drops the newest item instead of
// blocking the game loop.
const (
	requestCapacity = 2
	resultCapacity  = 3
)

type request struct {
	model  string
	prompt string
}

// SpeechWorker runs generation requests on a single background goroutine.
// The interaction loop talks to it only through bounded channels with
// non-blocking try operations; the worker never touches pet state.
type SpeechWorker struct {
	requests chan request
	results  chan string
	generate func(model, prompt string) (bool, string)
}

// NewSpeechWorker starts the background worker. It is never joined: on
// process exit an in-flight generation is simply abandoned.
func NewSpeechWorker() *SpeechWorker {
	return NewSpeechWorkerFunc(Generate)
}

// NewSpeechWorkerFunc starts a worker backed by the given generate
// function, so callers can drive the queue without shelling out.
func NewSpeechWorkerFunc(generate func(model, prompt string) (bool, string)) *SpeechWorker {
	w := &SpeechWorker{
		requests: make(chan request, requestCapacity),
		results:  make(chan string, resultCapacity),
		generate: generate,
	}
	go w.run()
	return w
}

func (w *SpeechWorker) run() {
	for req := range w.requests {
		ok, out := w.generate(req.model, req.prompt)
		if !ok {
			continue
		}
		line := SanitizeOneLiner(out, MaxLineLen)
		if line == "" {
			continue
		}
		select {
		case w.results <- line:
		default: // results full, drop
		}
	}
}

// TryRequest queues a generation request without blocking. Returns false
// when the request channel is full and the request was dropped.
func (w *SpeechWorker) TryRequest(model, prompt string) bool {
	select {
	case w.requests <- request{model: model, prompt: prompt}:
		return true
	default:
		return false
	}
}

// TryPop returns a completed line without blocking, or ok=false when
// nothing is ready.
func (w *SpeechWorker) TryPop() (string, bool) {
	select {
	case line := <-w.results:
		return line, true
	default:
		return "", false
	}
}
