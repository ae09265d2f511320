package llm

import "fmt"

const refinePrompt = `You are refining a JSON SCHEMA SKELETON.

Input is a JSON skeleton that already preserves the FULL structure and normalized keys.
Your job:
- Return VALID JSON ONLY (no markdown, no comments, no code fences).
- KEEP the exact structural depth and keys.
- You MAY reorder keys and remove obvious duplicates if any appear after normalization.
- You MUST NOT remove any branch or collapse objects/arrays.
- All primitives must remain "" (empty string), objects as {} and arrays as [] or [{...}] for arrays of objects.

Here is the skeleton to refine:

%s

Return ONLY the refined JSON.
`

// RefinePrompt builds the structure-preserving skeleton refinement prompt.
func RefinePrompt(skeletonJSON string) string {
	return fmt.Sprintf(refinePrompt, skeletonJSON)
}

const insightSinglePrompt = `You are a senior logs analysis assistant.
You will read extracted log fields (already curated and focused) and produce a highly technical, concise, and actionable analysis.

INPUT (extracted fields):
%s

REQUIRED OUTPUT (use this exact structure and headings, concise bullet lists):
# Technical Summary
- (2-5 bullets of what happened end-to-end)

## Timeline
- (ordered bullets: key events with timestamps/ids if present)

## Anomalies
- (bullets: unexpected patterns, missing fields, sudden spikes, edge cases)

## Root Cause (if any)
- (one or two bullets identifying likely cause from evidence in the input)

## Suggestions
- (bullets: engineering actions, improvements, guardrails)

Keep it precise, professional, and avoid generic commentary.
`

// InsightSingle builds the single-pass technical summary prompt.
func InsightSingle(content string) string {
	return fmt.Sprintf(insightSinglePrompt, content)
}

const insightChunkPrompt = `You are assisting in a map-reduce summarization of extracted logs.

Chunk %d/%d below. Produce a compact technical digest of ONLY this chunk:

[CHUNK START]
%s
[CHUNK END]

Output (very concise, technical bullets):
- Key events:
- Notable anomalies:
- Possible causes:
- Metrics/IDs/fields to carry forward:
`

// InsightChunk builds the per-chunk digest prompt.
func InsightChunk(index, total int, content string) string {
	return fmt.Sprintf(insightChunkPrompt, index, total, content)
}

const insightFinalPrompt = `You are the synthesizer. Combine the partial digests (from multiple chunks) into one coherent, technical insight.

Partials from %d chunks:
[PARTIALS START]
%s
[PARTIALS END]

FINAL OUTPUT (strict format):
# Technical Summary
- (2-5 bullets)

## Timeline
- (ordered bullets, merge duplicates, keep IDs/timestamps if present)

## Anomalies
- (group, deduplicate, keep strong signals)

## Root Cause
- (one or two bullets, evidence-based)

## Suggestions
- (clear engineering actions)
`

// InsightFinal builds the synthesis prompt combining per-chunk digests.
func InsightFinal(total int, partials string) string {
	return fmt.Sprintf(insightFinalPrompt, total, partials)
}
