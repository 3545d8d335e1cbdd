package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/df07/go-ar-hittest/pkg/geometry"
	"github.com/df07/go-ar-hittest/pkg/loaders"
	"github.com/df07/go-ar-hittest/pkg/math"
	"github.com/df07/go-ar-hittest/pkg/scene"
)

var rootCmd = &cobra.Command{
	Use:   "arhit",
	Short: "AR tap-hit geometry toolkit",
	Long: `arhit inspects 3D model bounding volumes and runs the tap-hit
queries an AR scene would issue: bounding box reduction, world-space
projection, and ray-cone intersection.`,
}

var infoCmd = &cobra.Command{
	Use:   "info <model.obj>",
	Short: "Display bounding volume information for an OBJ model",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

var tapCmd = &cobra.Command{
	Use:   "tap <model.obj>",
	Short: "Place a model and run a tap-hit query against it",
	Args:  cobra.ExactArgs(1),
	RunE:  runTap,
}

var (
	tapX      float32
	tapY      float32
	tapKind   string
	tapAspect float32
)

func init() {
	tapCmd.Flags().Float32Var(&tapX, "x", 0.5, "Tap X in normalized screen coordinates [0,1]")
	tapCmd.Flags().Float32Var(&tapY, "y", 0.5, "Tap Y in normalized screen coordinates [0,1]")
	tapCmd.Flags().StringVar(&tapKind, "kind", "tree", "Catalog kind to place the model as")
	tapCmd.Flags().Float32Var(&tapAspect, "aspect", 16.0/9.0, "Screen aspect ratio")

	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(tapCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	verts, err := loaders.LoadOBJ(args[0])
	if err != nil {
		return err
	}

	bounds := geometry.NewAABBFromVertices(verts)
	if bounds.IsEmpty() {
		return fmt.Errorf("%s contains no vertices", args[0])
	}

	size := bounds.Size()
	center := bounds.Center()

	fmt.Printf("Model: %s\n", args[0])
	fmt.Printf("Vertices: %d\n\n", len(verts)/3)

	fmt.Println("Bounding Box:")
	fmt.Printf("  Min:    (%.4f, %.4f, %.4f)\n", bounds.Min.X, bounds.Min.Y, bounds.Min.Z)
	fmt.Printf("  Max:    (%.4f, %.4f, %.4f)\n", bounds.Max.X, bounds.Max.Y, bounds.Max.Z)
	fmt.Printf("  Center: (%.4f, %.4f, %.4f)\n", center.X, center.Y, center.Z)
	fmt.Printf("  Size:   (%.4f, %.4f, %.4f)\n\n", size.X, size.Y, size.Z)

	cone, err := geometry.ConeForBounds(bounds, math.Identity())
	if err != nil {
		fmt.Printf("Tap cone: not derivable (%v)\n", err)
		return nil
	}
	fmt.Println("Tap Cone:")
	fmt.Printf("  Apex:   (%.4f, %.4f, %.4f)\n", cone.Apex.X, cone.Apex.Y, cone.Apex.Z)
	fmt.Printf("  Base:   (%.4f, %.4f, %.4f)\n", cone.BaseCenter.X, cone.BaseCenter.Y, cone.BaseCenter.Z)
	fmt.Printf("  Radius: %.4f\n", cone.Radius)
	return nil
}

func runTap(cmd *cobra.Command, args []string) error {
	verts, err := loaders.LoadOBJ(args[0])
	if err != nil {
		return err
	}

	bounds := geometry.NewAABBFromVertices(verts)
	if bounds.IsEmpty() {
		return fmt.Errorf("%s contains no vertices", args[0])
	}

	// Place the model two units in front of the camera
	sc := scene.NewScene(nil)
	obj, err := sc.PlaceWithBounds(tapKind, bounds, math.Translation(0, -0.5, -2))
	if err != nil {
		return err
	}

	camera := scene.NewCamera(math.NewVec3(0, 0, 0), tapAspect)
	ray := camera.Unproject(tapX, tapY)

	fmt.Printf("Placed %q #%d, world bounds %v .. %v\n", obj.Kind, obj.ID,
		obj.WorldBounds().Min, obj.WorldBounds().Max)
	fmt.Printf("Tap (%.2f, %.2f) -> ray origin %v direction %v\n",
		tapX, tapY, ray.Origin, ray.Direction)

	hitObj, hit, ok := sc.HitTest(ray)
	if !ok {
		fmt.Println("Result: miss")
		return nil
	}
	fmt.Printf("Result: hit %q #%d at (%.4f, %.4f, %.4f), distance %.4f\n",
		hitObj.Kind, hitObj.ID, hit.Point.X, hit.Point.Y, hit.Point.Z, hit.T)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
