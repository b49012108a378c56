// Package domain contains the core entities of the self-QA generator:
// the identity a session is generated for, question-answer pairs, the
// role-tagged messages sent to a model, and model endpoint
// configurations. It is independent of any transport or storage
// mechanism.
package domain
