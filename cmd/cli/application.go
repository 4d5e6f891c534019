package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/temirov/findcommit/internal/aliases"
	"github.com/temirov/findcommit/internal/commits"
	"github.com/temirov/findcommit/internal/dispatch"
	"github.com/temirov/findcommit/internal/execshell"
	"github.com/temirov/findcommit/internal/ui"
	"github.com/temirov/findcommit/internal/utils"
	flagutils "github.com/temirov/findcommit/internal/utils/flags"
	pathutils "github.com/temirov/findcommit/internal/utils/path"
)

const (
	applicationUseConstant                  = "find-commit [commit-or-alias] [branch-filter]"
	applicationShortDescriptionConstant     = "Find the branches that contain a commit"
	applicationLongDescriptionConstant      = "find-commit lists the branches containing a commit, optionally narrowed by a branch name substring, and keeps short aliases for commits in a JSON file."
	applicationExampleConstant              = "  find-commit 4f2a9c1\n  find-commit 4f2a9c1 release\n  find-commit -s hotfix 4f2a9c1\n  find-commit hotfix --files\n  find-commit -l\n  find-commit -d hotfix"
	maximumPositionalArgumentsConstant      = 2
	userConfigurationDirectoryNameConstant  = "find-commit"
	defaultConfigurationSearchPathConstant  = "."
	environmentPrefixConstant               = "FINDCOMMIT"
	configurationNameConstant               = "config"
	configurationTypeConstant               = "yaml"
	configFileFlagNameConstant              = "config"
	configFileFlagUsageConstant             = "Optional path to a configuration file (YAML or JSON)."
	logLevelFlagNameConstant                = "log-level"
	logLevelFlagUsageConstant               = "Override the configured log level."
	logFormatFlagNameConstant               = "log-format"
	logFormatFlagUsageConstant              = "Override the configured log format."
	colorFlagNameConstant                   = "color"
	colorFlagUsageConstant                  = "Control colored output."
	scopeFlagNameConstant                   = "scope"
	scopeFlagUsageConstant                  = "Branch namespace searched for the commit."
	backendFlagNameConstant                 = "backend"
	backendFlagUsageConstant                = "Git implementation answering commit queries."
	repositoryFlagNameConstant              = "repository"
	repositoryFlagUsageConstant             = "Path inside the git repository to query."
	storeFlagNameConstant                   = "store"
	storeFlagUsageConstant                  = "Path to the alias storage file (defaults to alias-storage.json beside the executable)."
	saveFlagNameConstant                    = "save"
	saveFlagShorthandConstant               = "s"
	saveFlagUsageConstant                   = "Save the positional commit reference under this alias."
	listFlagNameConstant                    = "list"
	listFlagShorthandConstant               = "l"
	listFlagUsageConstant                   = "List saved aliases."
	deleteFlagNameConstant                  = "delete"
	deleteFlagShorthandConstant             = "d"
	deleteFlagUsageConstant                 = "Delete the named alias."
	exportFlagNameConstant                  = "export"
	exportFlagUsageConstant                 = "Write saved aliases to a .json, .yaml, or .toml file."
	importFlagNameConstant                  = "import"
	importFlagUsageConstant                 = "Merge aliases from a .json, .yaml, or .toml file."
	filesFlagNameConstant                   = "files"
	filesFlagUsageConstant                  = "Also list the files changed by the commit."
	commonLogLevelConfigKeyConstant         = "common.log_level"
	commonLogFormatConfigKeyConstant        = "common.log_format"
	storePathConfigKeyConstant              = "store.path"
	gitBackendConfigKeyConstant             = "git.backend"
	gitScopeConfigKeyConstant               = "git.scope"
	gitRepositoryConfigKeyConstant          = "git.repository"
	gitTimeoutConfigKeyConstant             = "git.timeout"
	outputColorConfigKeyConstant            = "output.color"
	defaultRepositoryPathConstant           = "."
	configurationInitializedMessageConstant = "configuration initialized"
	configurationLogLevelFieldConstant      = "log_level"
	configurationLogFormatFieldConstant     = "log_format"
	configurationFileFieldConstant          = "config_file"
	configurationBackendFieldConstant       = "backend"
	configurationScopeFieldConstant         = "scope"
	configurationLoadErrorTemplateConstant  = "unable to load configuration: %w"
	loggerCreationErrorTemplateConstant     = "unable to create logger: %w"
	loggerSyncErrorTemplateConstant         = "unable to flush logger: %w"
	storeCreationErrorTemplateConstant      = "unable to open alias storage: %w"
	repositoryPathErrorTemplateConstant     = "unable to resolve repository path: %w"
	flagValueErrorTemplateConstant          = "invalid --%s value: %w"
	rootCommandInfoMessageConstant          = "find-commit invoked"
	rootCommandDebugMessageConstant         = "find-commit arguments"
	commandFailedMessageConstant            = "find-commit failed"
	storeResolvedMessageConstant            = "alias storage resolved"
	logFieldArgumentCountConstant           = "argument_count"
	logFieldArgumentsConstant               = "arguments"
	logFieldStorePathConstant               = "store_path"
	logFieldTimeoutConstant                 = "timeout"
	loggerNotInitializedMessageConstant     = "logger not initialized"
)

var (
	logLevelChoices  = []string{string(utils.LogLevelDebug), string(utils.LogLevelInfo), string(utils.LogLevelWarn), string(utils.LogLevelError)}
	logFormatChoices = []string{string(utils.LogFormatConsole), string(utils.LogFormatStructured)}
	colorChoices     = []string{string(ui.ColorAuto), string(ui.ColorAlways), string(ui.ColorNever)}
	scopeChoices     = []string{string(commits.ScopeRemote), string(commits.ScopeLocal), string(commits.ScopeAll)}
	backendChoices   = []string{string(commits.BackendShell), string(commits.BackendGoGit)}
)

// ApplicationConfiguration describes the persisted configuration for find-commit.
type ApplicationConfiguration struct {
	Common ApplicationCommonConfiguration `mapstructure:"common"`
	Store  ApplicationStoreConfiguration  `mapstructure:"store"`
	Git    ApplicationGitConfiguration    `mapstructure:"git"`
	Output ApplicationOutputConfiguration `mapstructure:"output"`
}

// ApplicationCommonConfiguration stores logging configuration.
type ApplicationCommonConfiguration struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// ApplicationStoreConfiguration locates the alias storage file. An empty path selects the file beside the executable.
type ApplicationStoreConfiguration struct {
	Path string `mapstructure:"path"`
}

// ApplicationGitConfiguration controls how commit queries reach git.
type ApplicationGitConfiguration struct {
	Backend    commits.Backend `mapstructure:"backend"`
	Scope      commits.Scope   `mapstructure:"scope"`
	Repository string          `mapstructure:"repository"`
	Timeout    time.Duration   `mapstructure:"timeout"`
}

// ApplicationOutputConfiguration controls rendering.
type ApplicationOutputConfiguration struct {
	Color ui.ColorMode `mapstructure:"color"`
}

// ApplicationDependencies overrides process-level collaborators. Zero values select the operating system defaults.
type ApplicationDependencies struct {
	StandardOutput           io.Writer
	StandardError            io.Writer
	CommandRunner            execshell.CommandRunner
	HomeDirectoryProvider    pathutils.HomeDirectoryProvider
	ExecutableProvider       pathutils.ExecutableProvider
	ConfigurationSearchPaths []string
}

type modeFlagValues struct {
	saveAlias     string
	listRequested bool
	deleteAlias   string
	exportPath    string
	importPath    string
	includeFiles  bool
}

type configurationFlagValues struct {
	configurationFilePath string
	repositoryPath        string
	storePath             string
	logLevel              *flagutils.ChoiceValue
	logFormat             *flagutils.ChoiceValue
	color                 *flagutils.ChoiceValue
	scope                 *flagutils.ChoiceValue
	backend               *flagutils.ChoiceValue
}

// Application wires the Cobra root command, configuration loader, structured logger, and find-commit collaborators.
type Application struct {
	rootCommand           *cobra.Command
	configurationLoader   *utils.ConfigurationLoader
	loggerFactory         *utils.LoggerFactory
	logger                *zap.Logger
	configuration         ApplicationConfiguration
	configurationMetadata utils.LoadedConfiguration
	configurationLoaded   bool
	pathResolver          *pathutils.Resolver
	commandRunner         execshell.CommandRunner
	standardOutput        io.Writer
	standardError         io.Writer
	modeFlags             modeFlagValues
	configurationFlags    configurationFlagValues
}

type reportedError struct {
	cause error
}

func (failure reportedError) Error() string {
	return failure.cause.Error()
}

func (failure reportedError) Unwrap() error {
	return failure.cause
}

// IsReported reports whether err was already rendered to the user by the application.
func IsReported(err error) bool {
	var reported reportedError
	return errors.As(err, &reported)
}

// NewApplication assembles an application bound to the process streams and the operating system.
func NewApplication() *Application {
	return NewApplicationWithDependencies(ApplicationDependencies{})
}

// NewApplicationWithDependencies assembles an application using the provided collaborators.
func NewApplicationWithDependencies(dependencies ApplicationDependencies) *Application {
	standardOutput := dependencies.StandardOutput
	if standardOutput == nil {
		standardOutput = os.Stdout
	}
	standardError := dependencies.StandardError
	if standardError == nil {
		standardError = os.Stderr
	}
	commandRunner := dependencies.CommandRunner
	if commandRunner == nil {
		commandRunner = execshell.NewOSCommandRunner()
	}
	searchPaths := dependencies.ConfigurationSearchPaths
	if len(searchPaths) == 0 {
		searchPaths = defaultConfigurationSearchPaths()
	}

	configurationLoader := utils.NewConfigurationLoader(
		configurationNameConstant,
		configurationTypeConstant,
		environmentPrefixConstant,
		searchPaths,
	)
	configurationLoader.SetEmbeddedConfiguration(EmbeddedDefaultConfiguration())

	application := &Application{
		configurationLoader: configurationLoader,
		loggerFactory:       utils.NewLoggerFactoryWithWriter(func() io.Writer { return standardError }),
		logger:              zap.NewNop(),
		pathResolver:        pathutils.NewResolverWithProviders(dependencies.HomeDirectoryProvider, dependencies.ExecutableProvider),
		commandRunner:       commandRunner,
		standardOutput:      standardOutput,
		standardError:       standardError,
	}

	cobraCommand := &cobra.Command{
		Use:           applicationUseConstant,
		Short:         applicationShortDescriptionConstant,
		Long:          applicationLongDescriptionConstant,
		Example:       applicationExampleConstant,
		Args:          cobra.MaximumNArgs(maximumPositionalArgumentsConstant),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(command *cobra.Command, arguments []string) error {
			return application.initializeConfiguration(command)
		},
		RunE: func(command *cobra.Command, arguments []string) error {
			return application.runRootCommand(command, arguments)
		},
	}

	cobraCommand.SetContext(context.Background())
	cobraCommand.SetOut(standardOutput)
	cobraCommand.SetErr(standardError)

	persistentFlags := cobraCommand.PersistentFlags()
	persistentFlags.StringVar(&application.configurationFlags.configurationFilePath, configFileFlagNameConstant, "", configFileFlagUsageConstant)
	persistentFlags.StringVar(&application.configurationFlags.repositoryPath, repositoryFlagNameConstant, defaultRepositoryPathConstant, repositoryFlagUsageConstant)
	persistentFlags.StringVar(&application.configurationFlags.storePath, storeFlagNameConstant, "", storeFlagUsageConstant)
	application.configurationFlags.logLevel = flagutils.BindChoiceFlag(persistentFlags, logLevelFlagNameConstant, string(utils.LogLevelWarn), logLevelChoices, logLevelFlagUsageConstant)
	application.configurationFlags.logFormat = flagutils.BindChoiceFlag(persistentFlags, logFormatFlagNameConstant, string(utils.LogFormatConsole), logFormatChoices, logFormatFlagUsageConstant)
	application.configurationFlags.color = flagutils.BindChoiceFlag(persistentFlags, colorFlagNameConstant, string(ui.ColorAuto), colorChoices, colorFlagUsageConstant)
	application.configurationFlags.scope = flagutils.BindChoiceFlag(persistentFlags, scopeFlagNameConstant, string(commits.ScopeRemote), scopeChoices, scopeFlagUsageConstant)
	application.configurationFlags.backend = flagutils.BindChoiceFlag(persistentFlags, backendFlagNameConstant, string(commits.BackendShell), backendChoices, backendFlagUsageConstant)

	modeFlags := cobraCommand.Flags()
	modeFlags.StringVarP(&application.modeFlags.saveAlias, saveFlagNameConstant, saveFlagShorthandConstant, "", saveFlagUsageConstant)
	modeFlags.BoolVarP(&application.modeFlags.listRequested, listFlagNameConstant, listFlagShorthandConstant, false, listFlagUsageConstant)
	modeFlags.StringVarP(&application.modeFlags.deleteAlias, deleteFlagNameConstant, deleteFlagShorthandConstant, "", deleteFlagUsageConstant)
	modeFlags.StringVar(&application.modeFlags.exportPath, exportFlagNameConstant, "", exportFlagUsageConstant)
	modeFlags.StringVar(&application.modeFlags.importPath, importFlagNameConstant, "", importFlagUsageConstant)
	modeFlags.BoolVar(&application.modeFlags.includeFiles, filesFlagNameConstant, false, filesFlagUsageConstant)

	application.rootCommand = cobraCommand

	return application
}

// SetArguments replaces the command-line arguments parsed by Execute.
func (application *Application) SetArguments(arguments []string) {
	application.rootCommand.SetArgs(arguments)
}

// Execute runs the root command, renders any failure once, and flushes the logger.
func (application *Application) Execute() error {
	executionError := application.rootCommand.Execute()
	if executionError != nil {
		executionError = application.reportError(executionError)
	}
	if syncError := application.flushLogger(); syncError != nil && executionError == nil {
		return fmt.Errorf(loggerSyncErrorTemplateConstant, syncError)
	}
	return executionError
}

// Execute builds a fresh application instance and runs it against the process arguments.
func Execute() error {
	return NewApplication().Execute()
}

func defaultConfigurationSearchPaths() []string {
	searchPaths := []string{defaultConfigurationSearchPathConstant}
	if userConfigurationDirectory, directoryError := os.UserConfigDir(); directoryError == nil {
		searchPaths = append(searchPaths, filepath.Join(userConfigurationDirectory, userConfigurationDirectoryNameConstant))
	}
	return searchPaths
}

func (application *Application) initializeConfiguration(command *cobra.Command) error {
	defaultValues := map[string]any{
		commonLogLevelConfigKeyConstant:  string(utils.LogLevelWarn),
		commonLogFormatConfigKeyConstant: string(utils.LogFormatConsole),
		storePathConfigKeyConstant:       "",
		gitBackendConfigKeyConstant:      string(commits.BackendShell),
		gitScopeConfigKeyConstant:        string(commits.ScopeRemote),
		gitRepositoryConfigKeyConstant:   defaultRepositoryPathConstant,
		gitTimeoutConfigKeyConstant:      "0s",
		outputColorConfigKeyConstant:     string(ui.ColorAuto),
	}

	loadedConfiguration, loadError := application.configurationLoader.LoadConfiguration(application.configurationFlags.configurationFilePath, defaultValues, &application.configuration)
	if loadError != nil {
		return fmt.Errorf(configurationLoadErrorTemplateConstant, loadError)
	}

	application.configurationMetadata = loadedConfiguration

	if overrideError := application.applyFlagOverrides(command); overrideError != nil {
		return overrideError
	}
	application.configurationLoaded = true

	logger, loggerCreationError := application.loggerFactory.CreateLogger(
		utils.LogLevel(strings.ToLower(strings.TrimSpace(application.configuration.Common.LogLevel))),
		utils.LogFormat(strings.ToLower(strings.TrimSpace(application.configuration.Common.LogFormat))),
	)
	if loggerCreationError != nil {
		return fmt.Errorf(loggerCreationErrorTemplateConstant, loggerCreationError)
	}

	application.logger = logger

	application.logger.Info(
		configurationInitializedMessageConstant,
		zap.String(configurationLogLevelFieldConstant, application.configuration.Common.LogLevel),
		zap.String(configurationLogFormatFieldConstant, application.configuration.Common.LogFormat),
		zap.String(configurationFileFieldConstant, application.configurationMetadata.ConfigFileUsed),
		zap.String(configurationBackendFieldConstant, string(application.configuration.Git.Backend)),
		zap.String(configurationScopeFieldConstant, string(application.configuration.Git.Scope)),
	)

	return nil
}

func (application *Application) applyFlagOverrides(command *cobra.Command) error {
	configurationFlags := application.configurationFlags

	if application.persistentFlagChanged(command, logLevelFlagNameConstant) {
		application.configuration.Common.LogLevel = configurationFlags.logLevel.String()
	}
	if application.persistentFlagChanged(command, logFormatFlagNameConstant) {
		application.configuration.Common.LogFormat = configurationFlags.logFormat.String()
	}
	if application.persistentFlagChanged(command, storeFlagNameConstant) {
		application.configuration.Store.Path = configurationFlags.storePath
	}
	if application.persistentFlagChanged(command, repositoryFlagNameConstant) {
		application.configuration.Git.Repository = configurationFlags.repositoryPath
	}
	if application.persistentFlagChanged(command, colorFlagNameConstant) {
		colorMode, parseError := ui.ParseColorMode(configurationFlags.color.String())
		if parseError != nil {
			return fmt.Errorf(flagValueErrorTemplateConstant, colorFlagNameConstant, parseError)
		}
		application.configuration.Output.Color = colorMode
	}
	if application.persistentFlagChanged(command, scopeFlagNameConstant) {
		scope, parseError := commits.ParseScope(configurationFlags.scope.String())
		if parseError != nil {
			return fmt.Errorf(flagValueErrorTemplateConstant, scopeFlagNameConstant, parseError)
		}
		application.configuration.Git.Scope = scope
	}
	if application.persistentFlagChanged(command, backendFlagNameConstant) {
		backend, parseError := commits.ParseBackend(configurationFlags.backend.String())
		if parseError != nil {
			return fmt.Errorf(flagValueErrorTemplateConstant, backendFlagNameConstant, parseError)
		}
		application.configuration.Git.Backend = backend
	}

	return nil
}

func (application *Application) humanReadableLoggingEnabled() bool {
	logFormatValue := strings.TrimSpace(application.configuration.Common.LogFormat)
	return strings.EqualFold(logFormatValue, string(utils.LogFormatConsole))
}

func (application *Application) runRootCommand(command *cobra.Command, arguments []string) error {
	if application.logger == nil {
		return errors.New(loggerNotInitializedMessageConstant)
	}

	application.logger.Info(
		rootCommandInfoMessageConstant,
		zap.Int(logFieldArgumentCountConstant, len(arguments)),
		zap.Duration(logFieldTimeoutConstant, application.configuration.Git.Timeout),
	)
	application.logger.Debug(
		rootCommandDebugMessageConstant,
		zap.Strings(logFieldArgumentsConstant, arguments),
	)

	store, storeError := application.openStore()
	if storeError != nil {
		return storeError
	}

	dispatcher, dispatcherError := dispatch.NewDispatcher(dispatch.Dependencies{
		Store:           store,
		LocatorProvider: application.provideLocator,
	})
	if dispatcherError != nil {
		return dispatcherError
	}

	executionContext := command.Context()
	if executionContext == nil {
		executionContext = context.Background()
	}
	if application.configuration.Git.Timeout > 0 {
		timeoutContext, cancel := context.WithTimeout(executionContext, application.configuration.Git.Timeout)
		defer cancel()
		executionContext = timeoutContext
	}

	outcome, dispatchError := dispatcher.Dispatch(executionContext, application.dispatchArguments(command, arguments))
	if dispatchError != nil {
		return dispatchError
	}

	return application.presenter().RenderOutcome(outcome)
}

func (application *Application) dispatchArguments(command *cobra.Command, positional []string) dispatch.Arguments {
	modeFlags := command.Flags()
	return dispatch.Arguments{
		SaveRequested:   modeFlags.Changed(saveFlagNameConstant),
		SaveAlias:       application.modeFlags.saveAlias,
		ListRequested:   modeFlags.Changed(listFlagNameConstant) && application.modeFlags.listRequested,
		DeleteRequested: modeFlags.Changed(deleteFlagNameConstant),
		DeleteAlias:     application.modeFlags.deleteAlias,
		ExportRequested: modeFlags.Changed(exportFlagNameConstant),
		ExportPath:      application.modeFlags.exportPath,
		ImportRequested: modeFlags.Changed(importFlagNameConstant),
		ImportPath:      application.modeFlags.importPath,
		IncludeFiles:    application.modeFlags.includeFiles,
		Scope:           application.configuration.Git.Scope,
		Positional:      append([]string(nil), positional...),
	}
}

func (application *Application) openStore() (*aliases.Store, error) {
	storePath, pathError := application.pathResolver.StorePath(application.configuration.Store.Path)
	if pathError != nil {
		return nil, fmt.Errorf(storeCreationErrorTemplateConstant, pathError)
	}

	application.logger.Debug(storeResolvedMessageConstant, zap.String(logFieldStorePathConstant, storePath))

	store, storeError := aliases.NewStore(aliases.StoreDependencies{Path: storePath, Logger: application.logger})
	if storeError != nil {
		return nil, fmt.Errorf(storeCreationErrorTemplateConstant, storeError)
	}
	return store, nil
}

func (application *Application) provideLocator(executionContext context.Context) (commits.Locator, error) {
	repositoryPath, pathError := application.pathResolver.Normalize(application.configuration.Git.Repository)
	if pathError != nil {
		return nil, fmt.Errorf(repositoryPathErrorTemplateConstant, pathError)
	}

	if application.configuration.Git.Backend == commits.BackendGoGit {
		goGitLocator, locatorError := commits.NewGoGitLocator(repositoryPath)
		if locatorError != nil {
			return nil, locatorError
		}
		return goGitLocator, nil
	}

	executor, executorError := execshell.NewShellExecutor(application.logger, application.commandRunner)
	if executorError != nil {
		return nil, executorError
	}
	if application.humanReadableLoggingEnabled() {
		executor.WithEventObserver(ui.NewConsoleCommandEventLogger(application.logger))
	}

	shellLocator, locatorError := commits.NewShellLocator(executor, repositoryPath)
	if locatorError != nil {
		return nil, locatorError
	}
	return shellLocator, nil
}

func (application *Application) presenter() *ui.Presenter {
	return ui.NewPresenter(application.standardOutput, application.standardError, application.presentationColorMode())
}

// presentationColorMode falls back to the --color flag when failures surface before configuration loads.
func (application *Application) presentationColorMode() ui.ColorMode {
	if application.configurationLoaded {
		return application.configuration.Output.Color
	}
	if application.rootCommand.PersistentFlags().Changed(colorFlagNameConstant) {
		if colorMode, parseError := ui.ParseColorMode(application.configurationFlags.color.String()); parseError == nil {
			return colorMode
		}
	}
	return ui.ColorAuto
}

func (application *Application) reportError(failure error) error {
	if IsReported(failure) {
		return failure
	}
	if application.logger != nil {
		application.logger.Debug(commandFailedMessageConstant, zap.Error(failure))
	}
	if renderError := application.presenter().RenderError(failure); renderError != nil {
		return errors.Join(failure, renderError)
	}
	return reportedError{cause: failure}
}

func (application *Application) flushLogger() error {
	if syncError := application.syncLoggerInstance(application.logger); syncError != nil {
		return syncError
	}
	return nil
}

func (application *Application) syncLoggerInstance(logger *zap.Logger) error {
	if logger == nil {
		return nil
	}

	syncError := logger.Sync()
	switch {
	case syncError == nil:
		return nil
	case errors.Is(syncError, syscall.ENOTSUP):
		return nil
	case errors.Is(syncError, syscall.EINVAL):
		return nil
	case errors.Is(syncError, syscall.ENOTTY):
		return nil
	default:
		return syncError
	}
}

func (application *Application) persistentFlagChanged(command *cobra.Command, flagName string) bool {
	if command == nil {
		return false
	}

	flagSetsToInspect := []*pflag.FlagSet{
		command.PersistentFlags(),
		command.InheritedFlags(),
	}

	rootCommand := command.Root()
	if rootCommand != nil {
		flagSetsToInspect = append(flagSetsToInspect, rootCommand.PersistentFlags())
	}

	for _, flagSet := range flagSetsToInspect {
		if flagSet == nil {
			continue
		}

		if flagSet.Changed(flagName) {
			return true
		}
	}

	return false
}
