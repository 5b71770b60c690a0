// Package domain contains the core study entities and rules of the
// application: the learnable item catalog types, the learner's progress
// record with its mastery bookkeeping, quiz sessions, and user accounts.
// It is independent of any specific infrastructure or delivery mechanism.
package domain
