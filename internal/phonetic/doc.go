// Package phonetic fetches IPA pronunciations for words that are missing
// from the pronunciation lookup. Providers wrap the OpenAI and Gemini APIs;
// the Fetcher adds timeouts, a circuit breaker and response clean-up.
package phonetic
