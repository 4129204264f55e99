// dispatchd runs the dispatch engine as a standalone daemon: it loads a
// static cluster file, serves an admin/stats endpoint, starts the engine
// and blocks. It exposes no endpoint for submitting or cancelling work.
// Grounded on binaries/scheduler/main.go's
// flag-driven startup, stripped of the jsonconfig DI layer in favor of the
// flag.FlagSet config package builds.
package main

import (
	"flag"
	"log"

	"github.com/apache/thrift/lib/go/thrift"

	"github.com/scootdev/dispatch/dispatch"
	"github.com/scootdev/dispatch/cluster"
	"github.com/scootdev/dispatch/cluster/httpfallback"
	"github.com/scootdev/dispatch/cluster/registrationcache"
	"github.com/scootdev/dispatch/common"
	"github.com/scootdev/dispatch/config"
	"github.com/scootdev/dispatch/dialer"
	"github.com/scootdev/dispatch/endpoints"
	gatewaythrift "github.com/scootdev/dispatch/gateway/thrift"
	"github.com/scootdev/dispatch/jobmgr"
	"github.com/scootdev/dispatch/logging"
	"github.com/scootdev/dispatch/logging/hooks"
)

func main() {
	flags := config.RegisterFlags(flag.CommandLine)
	flag.Parse()

	logging.AddHook(hooks.NewContextHook())
	instanceID := common.GenUUID()
	logging.WithFields(map[string]interface{}{"instance_id": instanceID}).Info("starting dispatchd")

	stat := endpoints.MakeStatsReceiver("dispatchd")
	admin := endpoints.NewAdminServer(flags.AdminAddr, stat)
	go func() {
		if err := admin.Serve(); err != nil {
			log.Fatal("admin server exited: ", err)
		}
	}()

	staticExecutors, err := config.LoadClusterFile(flags.ClusterFile)
	if err != nil {
		log.Fatal("loading cluster file: ", err)
	}

	var initial []cluster.Executor
	for _, e := range staticExecutors {
		initial = append(initial, cluster.NewExecutor(e.ID, e.Registration(), e.Capacity()))
	}
	cl := cluster.NewCluster(initial, make(chan cluster.ExecutorUpdates))

	gatewayFactory := func(reg dispatch.TaskExecutorRegistration) (dispatch.Gateway, error) {
		d := dialer.NewSimpleDialer(thrift.NewTTransportFactory(), thrift.NewTBinaryProtocolFactoryDefault())
		return gatewaythrift.NewClient(d, reg.Hostname), nil
	}
	fallback := httpfallback.NewFallback(httpfallback.MakePesterClient(), "/registration")
	resourceCluster := cluster.NewResourceCluster(cl, gatewayFactory).WithHostnameFallback(fallback)
	cachedCluster := registrationcache.NewCachedResourceCluster("dispatchd-registrations", flags.RegistrationCacheBytes, resourceCluster)

	router := jobmgr.NewRouter(jobmgr.LoggingSink{})
	payloadBuilder := jobmgr.CommandPayloadBuilder{DefaultEnv: flags.DefaultEnvVarsMap()}
	timer := dispatch.NewWallClockTimer()
	engineCfg := flags.EngineConfig()

	engine := dispatch.NewEngine(cachedCluster, router, payloadBuilder, timer, engineCfg, stat)
	engine.Start()
	defer engine.Stop()

	select {}
}
