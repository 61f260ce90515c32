package quiz

import "fmt"

// Route identifies the active view.
type Route int

const (
	RouteStart          Route = iota // Welcome region, static content
	RouteQuestion                    // Current question with its choices
	RouteAnswerFeedback              // Verdict and feedback for the last answer
	RouteFinalFeedback               // Final score
)

// Routes lists every route in display order.
var Routes = []Route{RouteStart, RouteQuestion, RouteAnswerFeedback, RouteFinalFeedback}

func (r Route) String() string {
	switch r {
	case RouteStart:
		return "start"
	case RouteQuestion:
		return "question"
	case RouteAnswerFeedback:
		return "answer-feedback"
	case RouteFinalFeedback:
		return "final-feedback"
	default:
		return fmt.Sprintf("route(%d)", int(r))
	}
}

// Valid reports whether r is one of the four known routes.
func (r Route) Valid() bool {
	return r >= RouteStart && r <= RouteFinalFeedback
}

// ParseRoute maps a route token back to its Route.
func ParseRoute(s string) (Route, error) {
	for _, r := range Routes {
		if r.String() == s {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidRoute, s)
}
