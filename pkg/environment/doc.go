// Package environment names the environments a formguard binary runs in and
// carries the current one through context.Context.
//
// Parse turns an APP_ENV value into an Environment, accepting the short
// aliases "dev", "stage" and "prod". WithContext and FromContext attach and
// read it, and LoggerExtractor exposes it to pkg/logger so every record
// logged with a context carries an "env" attribute.
//
//	ctx = environment.WithContext(ctx, environment.Parse(os.Getenv("APP_ENV")))
//	log := logger.New(logger.WithContextExtractors(environment.LoggerExtractor()))
package environment
