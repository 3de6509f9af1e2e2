// Package processor orchestrates the translation pipeline: it validates
// submissions, drives prompt construction and the service call, records
// successful translations in history and exposes the pipeline state as
// a single READY/TRANSLATING/SUCCESS/ERROR value. This package serves
// as the coordinator between all other components.
package processor
