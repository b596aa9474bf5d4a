package program

import (
	"context"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"
)

// Routine that is executed by RunMain(). The context is canceled when
// the program receives a termination signal.
type Routine func(ctx context.Context) error

// terminateWithSignal terminates the current process by sending a
// signal to itself.
func terminateWithSignal(currentPID int, terminationSignal os.Signal) {
	if runtime.GOOS == "windows" {
		// On Windows, process.Signal() is not supported so
		// immediately exit.
		os.Exit(1)
	}

	// Clear the signal handler and raise the original signal once
	// again. That way we shut down under the original
	// circumstances.
	signal.Reset(terminationSignal)
	process, err := os.FindProcess(currentPID)
	if err != nil {
		panic(err)
	}
	if err := process.Signal(terminationSignal); err != nil {
		panic(err)
	}

	// process.Signal() does not guarantee that the signal is
	// delivered to the same thread. Fall back to calling os.Exit()
	// if we don't get terminated via signal delivery.
	//
	// More details: https://github.com/golang/go/issues/19326
	time.Sleep(5 * time.Second)
	os.Exit(1)
}

var terminationSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGTERM,
}

// RunMain runs the main routine of a program. The program terminates
// with exit code 0 if the routine completes successfully, and with
// exit code 1 if it returns an error, which is logged. If the program
// receives SIGINT or SIGTERM, the routine's context is canceled, and
// the program terminates with that signal once the routine returns.
func RunMain(routine Routine) {
	currentPID := os.Getpid()
	ctx, cancel := context.WithCancel(context.Background())

	// Handle incoming signals.
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, terminationSignals...)
	receivedSignals := make(chan os.Signal, 1)
	go func() {
		receivedSignal := <-signalChan
		log.Printf("Received %#v signal. Initiating graceful shutdown.", receivedSignal.String())
		receivedSignals <- receivedSignal
		cancel()
	}()

	err := routine(ctx)
	select {
	case receivedSignal := <-receivedSignals:
		if err != nil {
			log.Print("Fatal error: ", err)
		}
		terminateWithSignal(currentPID, receivedSignal)
	default:
	}
	cancel()
	if err != nil {
		log.Print("Fatal error: ", err)
		os.Exit(1)
	}
	os.Exit(0)
}
