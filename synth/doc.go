// Package synth creates and fills Go values with generated data.
//
//	s, err := synth.New(
//		synth.WithSettings(settings.Defaults().WithSeed(42)),
//		synth.WithSelectors(
//			selector.Set(selector.MustFieldPath("Address.CountryCode"), "+9"),
//			selector.Ignore(selector.Field("Secret")),
//		),
//	)
//	person, res, err := synth.Create[fixtures.Person](s)
//
// A Synth caches one schema graph per type and is safe for concurrent use.
// Every run draws from its own random source, seeded from the configured
// seed or a random one reported in Result.Seed.
package synth
