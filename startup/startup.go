// Package startup runs the program's initialization steps in order.
package startup

import (
	"fmt"
	"log"
)

// Step is one named initialization action.
type Step struct {
	Name string
	Run  func() error
}

// Run executes steps in order and stops at the first failure. Steps after a
// failed one are never attempted.
func Run(steps ...Step) error {
	for _, s := range steps {
		log.Printf("Initializing %s...", s.Name)
		if err := s.Run(); err != nil {
			log.Printf("%s failed to initialize: %v", s.Name, err)
			return fmt.Errorf("%s: %w", s.Name, err)
		}
		log.Printf("%s initialized.", s.Name)
	}
	return nil
}
