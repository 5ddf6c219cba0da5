// Package models lists the OpenAI chat models that can serve as the
// phonetic provider for fetching missing pronunciations.
package models
