package app

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Auto parts store", func() {
	var (
		ctx context.Context
		out *bytes.Buffer
	)

	session := func(script string) error {
		a, err := New(ctx, WithInput(strings.NewReader(script)), WithOutput(out))
		Expect(err).NotTo(HaveOccurred())
		return a.Run(ctx)
	}

	BeforeEach(func() {
		ctx = context.Background()
		out = &bytes.Buffer{}

		restoreEnv("STORE_SEED_DEMO")
		restoreEnv("LOGGER_LEVEL")
		Expect(os.Setenv("STORE_SEED_DEMO", "false")).To(Succeed())
		Expect(os.Setenv("LOGGER_LEVEL", "error")).To(Succeed())
	})

	Context("with an empty inventory", func() {
		It("reports the total value of an added battery", func() {
			Expect(session("1\nBattery\n50.0\n2\n12.0\n6\n7\n")).To(Succeed())

			Expect(out.String()).To(ContainSubstring("Battery ha sido agregado al inventario.\n"))
			Expect(out.String()).To(ContainSubstring("El valor total del inventario es: $100.00\n"))
			Expect(out.String()).To(HaveSuffix("Saliendo de la aplicación...\n"))
		})

		It("forgets a removed gear whatever the case", func() {
			Expect(session("2\nGear\n10.0\n5\n0.5\n4\nGear\n6\n3\ngEaR\n7\n")).To(Succeed())

			Expect(out.String()).To(ContainSubstring("Gear ha sido eliminado del inventario.\n"))
			Expect(out.String()).To(ContainSubstring("El valor total del inventario es: $0.00\n"))
			Expect(out.String()).To(ContainSubstring("No se encontró el repuesto con el nombre gEaR.\n"))
		})

		It("keeps the menu running after a bad price", func() {
			Expect(session("1\nBattery\nbarato\n5\n7\n")).To(Succeed())

			Expect(out.String()).To(ContainSubstring("Error: El precio debe ser un número.\n"))
			Expect(out.String()).To(ContainSubstring("El inventario está vacío.\n"))
			Expect(out.String()).NotTo(ContainSubstring("ha sido agregado"))
		})

		It("leaves when the input ends", func() {
			Expect(session("5\n")).To(Succeed())

			Expect(out.String()).To(HaveSuffix("\nSaliendo de la aplicación...\n"))
		})
	})

	Context("with the demo catalogue", func() {
		BeforeEach(func() {
			Expect(os.Setenv("STORE_SEED_DEMO", "true")).To(Succeed())
		})

		It("lists the seeded parts", func() {
			Expect(session("5\n3\nalternador 90a\n7\n")).To(Succeed())

			Expect(out.String()).To(ContainSubstring("Repuestos en el inventario:\n"))
			Expect(out.String()).To(ContainSubstring("Repuesto Mecánico: Filtro de aceite, Precio: $9.75, Cantidad: 40, Peso: 0.35 kg\n"))
			Expect(out.String()).To(ContainSubstring("Repuesto encontrado: Repuesto Eléctrico: Alternador 90A, Precio: $245.00, Cantidad: 3, Voltaje: 14.4 V\n"))
		})
	})

	It("builds one line reader for the pump and the menu", func() {
		a, err := New(ctx, WithInput(strings.NewReader("7\n")), WithOutput(out))
		Expect(err).NotTo(HaveOccurred())

		handler := a.di.StoreHandler(ctx)
		Expect(a.di.reader).NotTo(BeNil())
		Expect(a.di.LineReader(ctx)).To(BeIdenticalTo(a.di.reader))
		Expect(a.di.StoreHandler(ctx)).To(BeIdenticalTo(handler))
	})

	It("never loses the menu input across repeated runs", func() {
		for range 25 {
			out.Reset()
			a, err := New(ctx, WithInput(strings.NewReader("6\n7\n")), WithOutput(out))
			Expect(err).NotTo(HaveOccurred())

			done := make(chan error, 1)
			go func() { done <- a.Run(ctx) }()

			Eventually(done, 2*time.Second).Should(Receive(BeNil()))
			Expect(out.String()).To(HaveSuffix("Saliendo de la aplicación...\n"))
		}
	})

	It("runs the shutdown hooks of every app", func() {
		var closed []string
		for _, name := range []string{"first", "second"} {
			a, err := New(ctx, WithInput(strings.NewReader("7\n")), WithOutput(out))
			Expect(err).NotTo(HaveOccurred())

			a.closer.AddNamed(name, func(context.Context) error {
				closed = append(closed, name)
				return nil
			})
			Expect(a.Run(ctx)).To(Succeed())
		}

		Expect(closed).To(Equal([]string{"first", "second"}))
	})

	It("stops when the context is cancelled", func() {
		pr, pw := io.Pipe()
		DeferCleanup(pw.Close)

		runCtx, cancel := context.WithCancel(ctx)
		a, err := New(runCtx, WithInput(pr), WithOutput(out))
		Expect(err).NotTo(HaveOccurred())

		done := make(chan error, 1)
		go func() { done <- a.Run(runCtx) }()

		cancel()

		Eventually(done, time.Second).Should(Receive(BeNil()))
	})
})

func restoreEnv(key string) {
	prev, ok := os.LookupEnv(key)
	DeferCleanup(func() {
		if ok {
			Expect(os.Setenv(key, prev)).To(Succeed())
			return
		}
		Expect(os.Unsetenv(key)).To(Succeed())
	})
}
