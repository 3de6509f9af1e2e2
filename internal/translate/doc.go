// Package translate provides Uzbek translation via hosted language-model
// services. It defines the Translator contract, the error taxonomy shared
// with the rest of the pipeline, and backends for Gemini, OpenAI and a
// deterministic offline stub, plus an optional circuit-breaker wrapper.
package translate
