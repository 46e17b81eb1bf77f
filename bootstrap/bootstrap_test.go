package bootstrap

import (
	"context"
	stderrors "errors"
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/kbukum/laracore/config"
	"github.com/kbukum/laracore/container"
	"github.com/kbukum/laracore/errors"
	"github.com/kbukum/laracore/events"
	"github.com/kbukum/laracore/logger"
	"github.com/kbukum/laracore/observability"
	"github.com/kbukum/laracore/provider"
)

const keyJournal = "test.journal"

var errBoot = stderrors.New("boot failed")

type journal struct{ entries []string }

func (j *journal) add(s string) { j.entries = append(j.entries, s) }

func journalOf(c *container.Container) *journal {
	if j, ok := container.TryResolve[*journal](c, keyJournal); ok {
		return j
	}
	return &journal{}
}

type providerA struct {
	provider.Base
	j *journal
}

func (p *providerA) Register(c *container.Container) error {
	p.j.add("register:A")
	c.Instance("test.a", "A")
	return nil
}

func (p *providerA) Boot(*container.Container) error {
	p.j.add("boot:A")
	return nil
}

type providerB struct {
	provider.Base
	j *journal
}

func (p *providerB) Register(*container.Container) error {
	p.j.add("register:B")
	return nil
}

func (p *providerB) Boot(c *container.Container) error {
	a, err := container.Resolve[string](c, "test.a")
	if err != nil {
		return err
	}
	p.j.add("boot:B:" + a)
	return nil
}

type failingProvider struct{ provider.Base }

func (failingProvider) Boot(*container.Container) error { return errBoot }

func init() {
	provider.RegisterClass("bootstrap_test.a", func(c *container.Container) (provider.Provider, error) {
		return &providerA{j: journalOf(c)}, nil
	})
	provider.RegisterClass("bootstrap_test.b", func(c *container.Container) (provider.Provider, error) {
		return &providerB{j: journalOf(c)}, nil
	})
	provider.RegisterClass("bootstrap_test.failing", func(*container.Container) (provider.Provider, error) {
		return failingProvider{}, nil
	})
}

func newFS(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for path, content := range files {
		if err := afero.WriteFile(fs, path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
	return fs
}

// newApp constructs an application on fs without running the pipeline and
// binds a fresh journal for the test providers.
func newApp(t *testing.T, fs afero.Fs, opts ...Option) (*Application, *journal) {
	t.Helper()
	opts = append([]Option{WithFilesystem(fs), WithLogger(logger.Nop()), WithoutBootstrap()}, opts...)
	app, err := New("/app", opts...)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	j := &journal{}
	app.Instance(keyJournal, j)
	return app, j
}

const providersConfig = `
name: shop
env: local
providers:
  - bootstrap_test.a
  - bootstrap_test.b
`

func TestNewRunsPipeline(t *testing.T) {
	fs := newFS(t, map[string]string{"/app/config/app.yaml": "name: shop\nenv: local\n"})
	app, err := New("/app", WithFilesystem(fs), WithLogger(logger.Nop()))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if app.Phase() != Booted || !app.HasBeenBootstrapped() {
		t.Errorf("expected phase Booted, got %s", app.Phase())
	}
	if !app.IsBooted() {
		t.Error("expected providers to be booted")
	}
	if app.Environment() != "local" || !app.IsLocal() {
		t.Errorf("expected local environment, got %q", app.Environment())
	}
	if got := app.Config().GetString("app.name"); got != "shop" {
		t.Errorf("expected app.name shop, got %q", got)
	}
}

func TestConfiguredProvidersOrder(t *testing.T) {
	fs := newFS(t, map[string]string{"/app/config/app.yaml": providersConfig})
	app, j := newApp(t, fs)

	if err := app.Bootstrap(context.Background()); err != nil {
		t.Fatalf("Bootstrap failed: %v", err)
	}

	want := []string{"register:A", "register:B", "boot:A", "boot:B:A"}
	if !reflect.DeepEqual(j.entries, want) {
		t.Errorf("got %v, want %v", j.entries, want)
	}

	var classes []string
	for _, p := range app.Providers() {
		classes = append(classes, provider.ClassOf(p))
	}
	wantClasses := []string{"*providers.EventServiceProvider", "*bootstrap.providerA", "*bootstrap.providerB"}
	if !reflect.DeepEqual(classes, wantClasses) {
		t.Errorf("got order %v, want %v", classes, wantClasses)
	}

	loaded := app.GetLoadedProviders()
	if !loaded["*bootstrap.providerA"] || !loaded["*bootstrap.providerB"] {
		t.Errorf("expected A and B loaded, got %v", loaded)
	}
	if app.GetProvider("bootstrap_test.a") == nil {
		t.Error("expected lookup by catalog name")
	}
}

func TestBootstrapRunsOnce(t *testing.T) {
	fs := newFS(t, map[string]string{"/app/config/app.yaml": providersConfig})
	app, j := newApp(t, fs)

	if err := app.Bootstrap(context.Background()); err != nil {
		t.Fatalf("Bootstrap failed: %v", err)
	}
	n := len(j.entries)
	if err := app.Bootstrap(context.Background()); err != nil {
		t.Fatalf("second Bootstrap failed: %v", err)
	}
	if len(j.entries) != n {
		t.Errorf("second Bootstrap must not register or boot again: %v", j.entries)
	}
}

func TestLateRegistrationBoots(t *testing.T) {
	app, j := newApp(t, newFS(t, nil))
	if err := app.Bootstrap(context.Background()); err != nil {
		t.Fatalf("Bootstrap failed: %v", err)
	}

	if _, err := app.Register(&providerA{j: j}, false); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	want := []string{"register:A", "boot:A"}
	if !reflect.DeepEqual(j.entries, want) {
		t.Errorf("got %v, want %v", j.entries, want)
	}
}

func TestBootstrapFailures(t *testing.T) {
	tests := []struct {
		name      string
		appYAML   string
		wantStep  string
		wantPhase Phase
		check     func(error) bool
	}{
		{
			name:      "invalid app key",
			appYAML:   "key: not-a-key\n",
			wantStep:  "LoadConfiguration",
			wantPhase: NotBootstrapped,
			check:     func(err error) bool { return errors.HasCode(err, errors.ErrCodeValidation) },
		},
		{
			name:      "unknown provider",
			appYAML:   "providers: [bootstrap_test.missing]\n",
			wantStep:  "RegisterProviders",
			wantPhase: ConfigLoaded,
			check:     func(err error) bool { return errors.HasCode(err, errors.ErrCodeProviderNotFound) },
		},
		{
			name:      "failing boot",
			appYAML:   "providers: [bootstrap_test.failing]\n",
			wantStep:  "BootProviders",
			wantPhase: ProvidersRegistered,
			check:     func(err error) bool { return stderrors.Is(err, errBoot) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _ := newApp(t, newFS(t, map[string]string{"/app/config/app.yaml": tt.appYAML}))

			err := app.Bootstrap(context.Background())
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.HasPrefix(err.Error(), "bootstrap "+tt.wantStep+": ") {
				t.Errorf("expected the step in the message, got %q", err.Error())
			}
			if !tt.check(err) {
				t.Errorf("cause not preserved: %v", err)
			}
			if app.Phase() != tt.wantPhase {
				t.Errorf("expected phase %s, got %s", tt.wantPhase, app.Phase())
			}
		})
	}
}

func TestNewReturnsBootstrapError(t *testing.T) {
	fs := newFS(t, map[string]string{"/app/config/app.yaml": "providers: [bootstrap_test.missing]\n"})
	_, err := New("/app", WithFilesystem(fs), WithLogger(logger.Nop()))
	if !errors.HasCode(err, errors.ErrCodeProviderNotFound) {
		t.Fatalf("expected PROVIDER_NOT_FOUND, got %v", err)
	}
}

func TestReplaceBootstrapper(t *testing.T) {
	app, j := newApp(t, newFS(t, nil))
	app.Bind(KeyLoadConfiguration, func(*container.Container) any {
		return BootstrapperFunc(func(_ context.Context, app *Application) error {
			app.Instance(container.KeyConfig, config.NewRepository(map[string]any{
				"app": map[string]any{"providers": []any{"bootstrap_test.a"}},
			}))
			return nil
		})
	})

	if err := app.Bootstrap(context.Background()); err != nil {
		t.Fatalf("Bootstrap failed: %v", err)
	}
	want := []string{"register:A", "boot:A"}
	if !reflect.DeepEqual(j.entries, want) {
		t.Errorf("got %v, want %v", j.entries, want)
	}
}

func TestWithConfigIsReused(t *testing.T) {
	repo := config.NewRepository(map[string]any{"cache": map[string]any{"ttl": 60}})
	fs := newFS(t, map[string]string{"/app/config/app.yaml": "name: shop\n"})
	app, _ := newApp(t, fs, WithConfig(repo))

	if err := app.Bootstrap(context.Background()); err != nil {
		t.Fatalf("Bootstrap failed: %v", err)
	}
	if app.Config() != repo {
		t.Fatal("expected the pre-seeded repository to stay bound")
	}
	if repo.GetInt("cache.ttl") != 60 || repo.GetString("app.name") != "shop" {
		t.Errorf("expected seeded and file values, got %v", repo.All())
	}
}

func TestEnvironmentFile(t *testing.T) {
	for _, key := range []string{"LARACORE_TEST_TOKEN", "APP_NAME"} {
		if _, set := os.LookupEnv(key); set {
			t.Skipf("%s is set in the environment", key)
		}
	}
	t.Cleanup(func() {
		_ = os.Unsetenv("LARACORE_TEST_TOKEN")
		_ = os.Unsetenv("APP_NAME")
	})

	fs := newFS(t, map[string]string{
		"/app/.env.testing":    "LARACORE_TEST_TOKEN=abc\nAPP_NAME=FromEnvFile\n",
		"/app/config/app.yaml": "name: shop\n",
	})
	app, _ := newApp(t, fs, WithEnvironmentFile(".env.testing"))
	if app.EnvironmentFilePath() != "/app/.env.testing" {
		t.Errorf("unexpected env file path %q", app.EnvironmentFilePath())
	}

	if err := app.Bootstrap(context.Background()); err != nil {
		t.Fatalf("Bootstrap failed: %v", err)
	}
	if got := os.Getenv("LARACORE_TEST_TOKEN"); got != "abc" {
		t.Errorf("expected the variable to be exported, got %q", got)
	}
	if got := app.Config().GetString("app.name"); got != "FromEnvFile" {
		t.Errorf("expected APP_NAME to override app.name, got %q", got)
	}
}

func TestPaths(t *testing.T) {
	app, _ := newApp(t, newFS(t, nil))
	app.SetBasePath("/app/")

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"base", app.BasePath(), "/app"},
		{"base joined", app.BasePath("composer.json"), "/app/composer.json"},
		{"config", app.ConfigPath("db.json"), "/app/config/db.json"},
		{"config dir", app.ConfigPath(), "/app/config"},
		{"database", app.DatabasePath("app.sqlite"), "/app/database/app.sqlite"},
		{"storage", app.StoragePath(), "/app/storage"},
		{"app", app.Path(), "/app/src"},
		{"env file", app.EnvironmentFile(), ".env"},
		{"env file path", app.EnvironmentFilePath(), "/app/.env"},
		{"services cache", app.GetCachedServicesPath(), "/app/bootstrap/cache/services.json"},
		{"packages cache", app.GetCachedPackagesPath(), "/app/bootstrap/cache/packages.json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestPathOverrides(t *testing.T) {
	app, _ := newApp(t, newFS(t, nil),
		WithStoragePath("/var/storage"),
		WithDatabasePath("/var/db"),
		WithAppPath("/app/lib"),
	)

	if app.StoragePath("logs") != "/var/storage/logs" {
		t.Errorf("unexpected storage path %q", app.StoragePath("logs"))
	}
	if app.DatabasePath() != "/var/db" {
		t.Errorf("unexpected database path %q", app.DatabasePath())
	}
	if app.Path() != "/app/lib" {
		t.Errorf("unexpected app path %q", app.Path())
	}
	if got := container.MustResolve[string](app.Container, container.KeyPathStorage); got != "/var/storage" {
		t.Errorf("expected path.storage to follow the override, got %q", got)
	}

	app.SetBasePath(`C:\work\`)
	if app.BasePath() != `C:\work` {
		t.Errorf("expected trailing separators trimmed, got %q", app.BasePath())
	}
}

func TestGetNamespace(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
		want     string
		wantErr  bool
	}{
		{"single path", `{"autoload":{"psr-4":{"App\\":"src/"}}}`, `App\`, false},
		{"path list", `{"autoload":{"psr-4":{"Lib\\":"lib/","App\\":["other/","src"]}}}`, `App\`, false},
		{"first match wins", `{"autoload":{"psr-4":{"First\\":"src","Second\\":"src/"}}}`, `First\`, false},
		{"other sections skipped", `{"name":"x/y","require":{"php":"^8"},"autoload":{"files":["a.php"],"psr-4":{"App\\":"./src"}}}`, `App\`, false},
		{"no match", `{"autoload":{"psr-4":{"Lib\\":"lib/"}}}`, "", true},
		{"no autoload", `{"name":"x/y"}`, "", true},
		{"invalid json", `{"autoload":`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _ := newApp(t, newFS(t, map[string]string{"/app/composer.json": tt.manifest}))

			got, err := app.GetNamespace()
			if tt.wantErr {
				if !errors.HasCode(err, errors.ErrCodeNamespaceDetection) {
					t.Fatalf("expected NAMESPACE_DETECTION, got %q, %v", got, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetNamespace failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetNamespaceCachedAndMissingManifest(t *testing.T) {
	fs := newFS(t, map[string]string{"/app/composer.json": `{"autoload":{"psr-4":{"App\\":"src/"}}}`})
	app, _ := newApp(t, fs)

	if _, err := app.GetNamespace(); err != nil {
		t.Fatalf("GetNamespace failed: %v", err)
	}
	if err := fs.Remove("/app/composer.json"); err != nil {
		t.Fatalf("remove manifest: %v", err)
	}
	if ns, err := app.GetNamespace(); err != nil || ns != `App\` {
		t.Errorf("expected the cached namespace, got %q, %v", ns, err)
	}

	root := newFS(t, map[string]string{"/app/composer.json": `{"autoload":{"psr-4":{"":"src/"}}}`})
	rootApp, _ := newApp(t, root)
	if ns, err := rootApp.GetNamespace(); err != nil || ns != "" {
		t.Fatalf("expected the root namespace, got %q, %v", ns, err)
	}
	if err := root.Remove("/app/composer.json"); err != nil {
		t.Fatalf("remove manifest: %v", err)
	}
	if ns, err := rootApp.GetNamespace(); err != nil || ns != "" {
		t.Errorf("expected the cached root namespace, got %q, %v", ns, err)
	}

	other, _ := newApp(t, afero.NewMemMapFs(), WithManifest("package.json"))
	if _, err := other.GetNamespace(); !errors.HasCode(err, errors.ErrCodeNamespaceDetection) {
		t.Errorf("expected NAMESPACE_DETECTION for a missing manifest, got %v", err)
	}
}

func TestCoreAliases(t *testing.T) {
	fs := newFS(t, nil)
	app, _ := newApp(t, fs)
	if err := app.Bootstrap(context.Background()); err != nil {
		t.Fatalf("Bootstrap failed: %v", err)
	}

	if got, _ := app.Make(container.KeyOf[*Application]()); got != app {
		t.Error("expected *bootstrap.Application to resolve to the application")
	}
	if got, _ := app.Make(container.KeyApp); got != app {
		t.Error("expected app to resolve to the application")
	}
	c, err := container.Resolve[*container.Container](app.Container, container.KeyOf[*container.Container]())
	if err != nil || !c.Same(app.Container) {
		t.Errorf("expected the container alias to resolve to the application's container: %v", err)
	}
	if got, _ := app.Make(container.KeyOf[afero.Fs]()); got != fs {
		t.Error("expected afero.Fs to resolve to the bound filesystem")
	}

	viaAlias := container.MustResolve[*events.Dispatcher](app.Container, container.KeyOf[*events.Dispatcher]())
	if viaAlias != container.MustResolve[*events.Dispatcher](app.Container, container.KeyEvents) {
		t.Error("expected the dispatcher alias to share the singleton")
	}

	results, err := app.Call(func(a *Application, repo *config.Repository) bool {
		return a == app && repo == app.Config()
	}, nil)
	if err != nil {
		t.Fatalf("Call failed: %v", err)
	}
	if !results[0].(bool) {
		t.Error("expected the application and config to be injected by type")
	}
}

func TestBootstrapEventsAndSpans(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		_ = tp.Shutdown(context.Background())
	})

	app, _ := newApp(t, newFS(t, nil))
	var fired []string
	d := container.MustResolve[*events.Dispatcher](app.Container, container.KeyEvents)
	d.Listen(func(event string, payload any) error {
		if payload != app {
			t.Errorf("expected the application as payload, got %T", payload)
		}
		fired = append(fired, event)
		return nil
	}, "bootstrapping: *", "bootstrapped: *")

	if err := app.Bootstrap(context.Background()); err != nil {
		t.Fatalf("Bootstrap failed: %v", err)
	}

	wantEvents := []string{
		"bootstrapping: LoadConfiguration", "bootstrapped: LoadConfiguration",
		"bootstrapping: RegisterProviders", "bootstrapped: RegisterProviders",
		"bootstrapping: BootProviders", "bootstrapped: BootProviders",
	}
	if !reflect.DeepEqual(fired, wantEvents) {
		t.Errorf("got events %v, want %v", fired, wantEvents)
	}

	var spans []string
	for _, s := range sr.Ended() {
		spans = append(spans, s.Name())
	}
	wantSpans := []string{"bootstrap.LoadConfiguration", "bootstrap.RegisterProviders", "bootstrap.BootProviders"}
	if !reflect.DeepEqual(spans, wantSpans) {
		t.Errorf("got spans %v, want %v", spans, wantSpans)
	}
}

func TestListenerErrorFailsStep(t *testing.T) {
	app, _ := newApp(t, newFS(t, nil))
	stop := stderrors.New("stop")
	d := container.MustResolve[*events.Dispatcher](app.Container, container.KeyEvents)
	d.Listen(func(string, any) error { return stop }, "bootstrapping: RegisterProviders")

	err := app.Bootstrap(context.Background())
	if !stderrors.Is(err, stop) {
		t.Fatalf("expected the listener error, got %v", err)
	}
	if app.Phase() != ConfigLoaded {
		t.Errorf("expected phase ConfigLoaded, got %s", app.Phase())
	}
}

func TestEnvironmentHelpers(t *testing.T) {
	app, _ := newApp(t, newFS(t, nil))
	if app.Environment() != "production" || !app.IsProduction() {
		t.Errorf("expected production by default, got %q", app.Environment())
	}

	inTests, _ := newApp(t, newFS(t, nil), WithConfig(config.NewRepository(map[string]any{
		"app": map[string]any{"env": "testing"},
	})))
	if !inTests.RunningUnitTests() {
		t.Error("expected RunningUnitTests in the testing environment")
	}
	if !inTests.EnvironmentIs("local", "test*") {
		t.Error("expected a glob match")
	}
	if inTests.EnvironmentIs("prod*") {
		t.Error("unexpected match")
	}

	if !app.RunningInConsole() {
		t.Error("expected console by default")
	}
	t.Setenv("APP_RUNNING_IN_CONSOLE", "false")
	if app.RunningInConsole() {
		t.Error("expected APP_RUNNING_IN_CONSOLE=false to disable console mode")
	}
}

func TestBootCallbacks(t *testing.T) {
	app, _ := newApp(t, newFS(t, nil))
	var calls []string
	app.Booting(func(*Application) { calls = append(calls, "booting") })
	app.Booted(func(*Application) { calls = append(calls, "booted") })

	if err := app.Bootstrap(context.Background()); err != nil {
		t.Fatalf("Bootstrap failed: %v", err)
	}
	app.Booted(func(*Application) { calls = append(calls, "late") })

	want := []string{"booting", "booted", "late"}
	if !reflect.DeepEqual(calls, want) {
		t.Errorf("got %v, want %v", calls, want)
	}
}

type closer struct{ closed int }

func (c *closer) Close() error {
	c.closed++
	return nil
}

func TestTerminate(t *testing.T) {
	app, _ := newApp(t, newFS(t, nil))
	res := &closer{}
	app.Instance("test.closer", res)

	hookErr := stderrors.New("hook failed")
	var order []int
	app.Terminating(
		func(context.Context) error { order = append(order, 1); return hookErr },
		func(context.Context) error { order = append(order, 2); return nil },
	)

	err := app.Terminate(context.Background())
	if !stderrors.Is(err, hookErr) {
		t.Fatalf("expected the hook error, got %v", err)
	}
	if !reflect.DeepEqual(order, []int{1, 2}) {
		t.Errorf("expected every hook to run in order, got %v", order)
	}
	if res.closed != 1 {
		t.Errorf("expected the closer to be closed once, got %d", res.closed)
	}

	if err := app.Terminate(context.Background()); err != nil {
		t.Errorf("second Terminate: %v", err)
	}
	if res.closed != 1 || len(order) != 2 {
		t.Error("Terminate must run once")
	}
}

func TestObservabilityProviderFromConfig(t *testing.T) {
	fs := newFS(t, map[string]string{"/app/config/app.yaml": "providers: [observability]\n"})
	app, _ := newApp(t, fs)
	if err := app.Bootstrap(context.Background()); err != nil {
		t.Fatalf("Bootstrap failed: %v", err)
	}

	tel, err := container.Resolve[*observability.Telemetry](app.Container, container.KeyOf[*observability.Telemetry]())
	if err != nil {
		t.Fatalf("resolve telemetry: %v", err)
	}
	if tel.Enabled() {
		t.Error("telemetry must stay off unless enabled in config")
	}
	if err := app.Terminate(context.Background()); err != nil {
		t.Errorf("Terminate failed: %v", err)
	}
}

func TestLogProviderReplacesApplicationLogger(t *testing.T) {
	prev := logger.GetGlobalLogger()
	t.Cleanup(func() { logger.SetGlobalLogger(prev) })

	fs := newFS(t, map[string]string{
		"/app/config/app.yaml":     "providers: [log]\n",
		"/app/config/logging.yaml": "level: warn\nformat: json\noutput: discard\n",
	})
	app, err := New("/app", WithFilesystem(fs), WithoutBootstrap())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := app.Bootstrap(context.Background()); err != nil {
		t.Fatalf("Bootstrap failed: %v", err)
	}

	if got := app.Logger().GetLogger().GetLevel().String(); got != "warn" {
		t.Errorf("expected the application logger at warn, got %q", got)
	}
}

func TestWithInstanceID(t *testing.T) {
	const id = "6f1c2a9e-3b4d-4e5f-8a7b-9c0d1e2f3a4b"
	app, _ := newApp(t, newFS(t, nil), WithInstanceID(id))
	if got := app.InstanceID().String(); got != id {
		t.Errorf("got %s, want %s", got, id)
	}

	for _, bad := range []string{"not-a-uuid", uuid.Nil.String()} {
		_, err := New("/app", WithFilesystem(afero.NewMemMapFs()), WithLogger(logger.Nop()), WithoutBootstrap(), WithInstanceID(bad))
		if !errors.HasCode(err, errors.ErrCodeValidation) {
			t.Errorf("WithInstanceID(%q): expected VALIDATION_FAILED, got %v", bad, err)
		}
	}
}

func TestStubs(t *testing.T) {
	app, _ := newApp(t, newFS(t, nil))
	app.RegisterDeferredProvider("events", "events")
	if app.IsDownForMaintenance() {
		t.Error("maintenance mode is never on")
	}
	if app.Version() == "" {
		t.Error("expected a version")
	}
	if app.InstanceID() == uuid.Nil {
		t.Error("expected an instance ID")
	}
	if !container.GetInstance().Same(app.Container) {
		t.Error("expected the application to be the process default container")
	}
}
