// Package massing turns three plan curves (a closed site boundary, a closed
// cell profile and an open path) into the massing of a covered market hall:
// rows of cells flanking a circulation spine under one roof, with arches,
// windows, skylights, entrances and interiors carved out.
//
// What:
//
//   - Solve / SolveStages: run an ordered list of stages over a fresh
//     Manifest. DefaultStages is the full generation; MeasureStages only
//     measures the inputs.
//   - Stages, in default order:
//     – ParseInputs:       cell size, volatilities and the three noise ranges.
//     – SamplePath:        stations at cell-width spacing with local frames.
//     – GenerateFlanks:    left/right regions and offset tiers on each side.
//     – GenerateCells:     one extruded cell per station pair between tiers.
//     – GenerateRoof:      roof slab over the inner tiers plus short and long axes.
//     – CollectMasses:     roof and every cell volume.
//     – SculptLongArch, SculptShortArches, SculptWindows, SculptSkylights:
//     roof carves.
//     – SculptEntrances, SculptInteriors: cell carves.
//   - Options: WithKernel, WithLogger, WithSeed, WithNormalizedStations,
//     WithJobID.
//
// Why:
//
//   - The stage list keeps generation a fixed, inspectable sequence; callers
//     may run a prefix of it, or splice in stages of their own.
//   - Every randomized stage re-opens its own stream from the run seed, so
//     one stage's draws never shift another's.
//
// Errors:
//
//   - Malformed inputs and failed solid construction abort the run with a
//     *StageError naming the stage and entity; errors.Is reaches the cause.
//   - Failed or empty subtractions never abort: the solid is kept as it was
//     and the outcome lands in Manifest.Carves.
//
// Complexity: dominated by the interior pass, O(c²) profile clippings for c
// cells, and by the kernel's solid evaluation.
package massing
