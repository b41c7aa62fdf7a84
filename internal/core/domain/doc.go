// Package domain contains the core types of the course recommendation
// pipeline: course records, indexed documents, learner profiles, and
// ranked recommendation results.
package domain
